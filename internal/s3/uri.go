package s3

import (
	"strings"

	"github.com/fatih/color"
)

// Location is a bucket plus an optional key.
type Location struct {
	Bucket string
	Key    string
}

var (
	schemeColor = color.New(color.FgGreen)
	bucketColor = color.New(color.FgBlue)
	keyColor    = color.New(color.FgYellow)
)

// trimKey drops leading slashes and collapses trailing slashes to one.
func trimKey(key string) string {
	key = strings.TrimLeft(key, "/")
	if strings.HasSuffix(key, "/") {
		key = strings.TrimRight(key, "/") + "/"
	}
	if key == "/" {
		return ""
	}
	return key
}

func FormatURI(bucket, key string) string {
	return "s3://" + strings.Trim(bucket, "/") + "/" + trimKey(key)
}

// FormatURIColor is FormatURI with the scheme, bucket and key highlighted.
func FormatURIColor(bucket, key string) string {
	return schemeColor.Sprint("s3") + "://" + bucketColor.Sprint(strings.Trim(bucket, "/")) + "/" + keyColor.Sprint(trimKey(key))
}

// ParseURI accepts s3://bucket/key, /bucket/key and bucket/key.
func ParseURI(uri string) Location {
	rest := uri
	if strings.HasPrefix(rest, "s3://") {
		rest = strings.TrimPrefix(rest, "s3://")
	}
	rest = strings.TrimLeft(rest, "/")

	bucket, key, _ := strings.Cut(rest, "/")
	return Location{
		Bucket: strings.Trim(bucket, "/"),
		Key:    trimKey(key),
	}
}

// ResolveResourceInfo parses bucketOrURI, letting an explicit key replace the
// parsed one.
func ResolveResourceInfo(bucketOrURI, key string) Location {
	loc := ParseURI(bucketOrURI)
	if key != "" {
		loc.Key = key
	}
	return loc
}

func (l Location) String() string {
	return FormatURI(l.Bucket, l.Key)
}
