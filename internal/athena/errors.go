package athena

import "fmt"

// JobPollError aborts a wait. Status failures are never retried.
type JobPollError struct {
	JobID string
	Err   error
}

func (e *JobPollError) Error() string {
	return fmt.Sprintf("failed polling query %s: %v", e.JobID, e.Err)
}

func (e *JobPollError) Unwrap() error { return e.Err }
