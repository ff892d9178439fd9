package domain

import (
	"encoding/json"
	"time"
)

type RunStatus string

const (
	RunQueued    RunStatus = "queued"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

type WorkflowStepRun struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status StepStatus `json:"status"`
	Logs   []string   `json:"logs"`
}

type WorkflowRun struct {
	ID          string            `json:"id"`
	PackageID   string            `json:"packageId"`
	PackageName string            `json:"packageName"`
	Status      RunStatus         `json:"status"`
	StartedAt   time.Time         `json:"startedAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	Steps       []WorkflowStepRun `json:"steps"`
	Context     map[string]any    `json:"context,omitempty"`
}

// PackageDefinition is an opaque automation package forwarded to the backend as-is.
type PackageDefinition json.RawMessage

func (p PackageDefinition) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(p).MarshalJSON()
}
