package s3_test

import (
	"testing"

	"github.com/BerryBytes/awskit/internal/s3"
	"github.com/stretchr/testify/assert"
)

func TestFormatURI(t *testing.T) {
	tests := []struct {
		bucket, key, want string
	}{
		{"bar", "", "s3://bar/"},
		{"bar", "foo", "s3://bar/foo"},
		{"bar", "/foo", "s3://bar/foo"},
		{"bar", "foo/", "s3://bar/foo/"},
		{"bar", "/foo/", "s3://bar/foo/"},
		{"/bar", "/foo/", "s3://bar/foo/"},
		{"//bar", "/foo/", "s3://bar/foo/"},
		{"bar/", "/foo/", "s3://bar/foo/"},
		{"bar//", "/foo/", "s3://bar/foo/"},
		{"/bar/", "/foo/", "s3://bar/foo/"},
		{"//bar//", "/foo/", "s3://bar/foo/"},
		{"bar", "foo//", "s3://bar/foo/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s3.FormatURI(tt.bucket, tt.key), "FormatURI(%q, %q)", tt.bucket, tt.key)
	}
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri  string
		want s3.Location
	}{
		{"s3://", s3.Location{}},
		{"s3://bkt/key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"s3://bkt/k/p", s3.Location{Bucket: "bkt", Key: "k/p"}},
		{"s3://bkt/k/p/", s3.Location{Bucket: "bkt", Key: "k/p/"}},
		{"s3://bkt/", s3.Location{Bucket: "bkt"}},
		{"s3://bkt", s3.Location{Bucket: "bkt"}},
		{"/bkt", s3.Location{Bucket: "bkt"}},
		{"/bkt/", s3.Location{Bucket: "bkt"}},
		{"/bkt/k/p", s3.Location{Bucket: "bkt", Key: "k/p"}},
		{"/bkt/k/p/", s3.Location{Bucket: "bkt", Key: "k/p/"}},
		{"bkt/", s3.Location{Bucket: "bkt"}},
		{"bkt/key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"bkt/key/", s3.Location{Bucket: "bkt", Key: "key/"}},
		{"bkt/k/p", s3.Location{Bucket: "bkt", Key: "k/p"}},
		{"bkt/k/p/", s3.Location{Bucket: "bkt", Key: "k/p/"}},
		{"bkt/k/p//", s3.Location{Bucket: "bkt", Key: "k/p/"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s3.ParseURI(tt.uri), "ParseURI(%q)", tt.uri)
	}
}

func TestResolveResourceInfo(t *testing.T) {
	tests := []struct {
		uri, key string
		want     s3.Location
	}{
		{"bkt", "key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"bkt", "key/", s3.Location{Bucket: "bkt", Key: "key/"}},
		{"bkt", "key/stuff", s3.Location{Bucket: "bkt", Key: "key/stuff"}},
		{"bkt/ignored", "key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"/bkt/ignored", "key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"//bkt/ignored", "key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"s3://bkt/ignored", "key", s3.Location{Bucket: "bkt", Key: "key"}},
		{"/bkt", "", s3.Location{Bucket: "bkt"}},
		{"bkt/key", "", s3.Location{Bucket: "bkt", Key: "key"}},
		{"/bkt/key", "", s3.Location{Bucket: "bkt", Key: "key"}},
		{"//bkt/key", "", s3.Location{Bucket: "bkt", Key: "key"}},
		{"s3://bkt/key", "", s3.Location{Bucket: "bkt", Key: "key"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s3.ResolveResourceInfo(tt.uri, tt.key), "ResolveResourceInfo(%q, %q)", tt.uri, tt.key)
	}
}

func TestURIRoundTrip(t *testing.T) {
	pairs := []struct{ bucket, key string }{
		{"bkt", "key"},
		{"/bkt/", "/a/b/"},
		{"//bkt//", "//a//b//"},
		{"bkt", "a//b"},
		{"bkt", ""},
		{"bkt", "/"},
	}
	for _, p := range pairs {
		uri := s3.FormatURI(p.bucket, p.key)
		loc := s3.ParseURI(uri)
		assert.Equal(t, uri, s3.FormatURI(loc.Bucket, loc.Key), "normalization is idempotent for %q", uri)
		assert.Equal(t, loc, s3.ParseURI(loc.String()))
	}

	assert.Equal(t, s3.Location{Bucket: "bkt", Key: "a/b/"}, s3.ParseURI(s3.FormatURI("//bkt//", "//a/b//")))
	assert.Equal(t, s3.Location{Bucket: "bkt", Key: "k/p"}, s3.ParseURI(s3.FormatURI("bkt", "k/p")))
}

func TestFormatURIColor(t *testing.T) {
	out := s3.FormatURIColor("bkt", "/key")
	assert.Contains(t, out, "bkt")
	assert.Contains(t, out, "key")
}
