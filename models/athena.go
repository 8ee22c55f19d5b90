package models

import "time"

// Location points at an object in S3.
type Location struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	URI    string `json:"uri"`
}

// QueryDurations are the Athena execution statistics, in seconds.
type QueryDurations struct {
	Queue   float64 `json:"queue"`
	Plan    float64 `json:"plan"`
	Exec    float64 `json:"exec"`
	Publish float64 `json:"publish"`
	Total   float64 `json:"total"`
}

// QueryStatus is a typed view of an Athena query execution.
type QueryStatus struct {
	QueryID          string         `json:"queryId"`
	Query            string         `json:"query,omitempty"`
	QueryType        string         `json:"queryType,omitempty"`
	WorkGroup        string         `json:"workGroup,omitempty"`
	Schema           string         `json:"schema,omitempty"`
	State            string         `json:"state"`
	StateReason      string         `json:"stateReason,omitempty"`
	Finished         bool           `json:"finished"`
	BytesScanned     int64          `json:"bytesScanned"`
	Durations        QueryDurations `json:"durations"`
	SubmittedAt      *time.Time     `json:"submittedAt,omitempty"`
	CompletedAt      *time.Time     `json:"completedAt,omitempty"`
	OutputLocation   Location       `json:"outputLocation"`
	ManifestLocation *Location      `json:"manifestLocation,omitempty"`
}

// QueryOutcome is the result of waiting on a query.
type QueryOutcome struct {
	QueryID      string         `json:"queryId"`
	State        string         `json:"state"`
	Finished     bool           `json:"finished"`
	Success      bool           `json:"success"`
	TimedOut     bool           `json:"timedOut"`
	BytesScanned int64          `json:"bytesScanned"`
	Durations    QueryDurations `json:"durations"`
}

// QueryResults is a sample of the CSV output of a finished query.
type QueryResults struct {
	State    string `json:"state"`
	URI      string `json:"uri,omitempty"`
	Bucket   string `json:"bucket,omitempty"`
	Key      string `json:"key,omitempty"`
	Data     []byte `json:"data,omitempty"`
	DataSize int64  `json:"dataSize"`
	Partial  bool   `json:"partial"`
}
