package models

import "time"

// ObjectInfo is a listed S3 object. Only Key is set unless metadata was requested.
type ObjectInfo struct {
	Key          string     `json:"key"`
	LastModified *time.Time `json:"timestamp,omitempty"`
	ETag         string     `json:"etag,omitempty"`
	Size         *int64     `json:"size,omitempty"`
}

// Upload is an in-progress multipart upload.
type Upload struct {
	Bucket    string     `json:"bucket"`
	Key       string     `json:"key"`
	ID        string     `json:"id"`
	Initiated *time.Time `json:"initiated,omitempty"`
}

// Bucket is an S3 bucket as returned by ListBuckets.
type Bucket struct {
	Name    string     `json:"bucket"`
	Created *time.Time `json:"created,omitempty"`
}

// ObjectHead is the metadata returned by HeadObject.
type ObjectHead struct {
	Bucket        string            `json:"bucket"`
	Key           string            `json:"key"`
	ContentLength int64             `json:"contentLength"`
	ContentType   string            `json:"contentType,omitempty"`
	ETag          string            `json:"etag,omitempty"`
	LastModified  *time.Time        `json:"lastModified,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
