package models

import "time"

// Execution is a Step Functions state machine run.
type Execution struct {
	Arn             string     `json:"executionArn"`
	StateMachineArn string     `json:"stateMachineArn"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	StopDate        *time.Time `json:"stopDate,omitempty"`
	Input           string     `json:"input,omitempty"`
	Output          string     `json:"output,omitempty"`
	Error           string     `json:"error,omitempty"`
	Cause           string     `json:"cause,omitempty"`
}
