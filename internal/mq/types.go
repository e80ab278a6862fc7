package mq

import (
	"fmt"
	"time"

	"linkpulse/internal/model"
)

// Delivery is one click event handed to a consumer. Handle identifies the
// job for Ack, Nack and Release.
type Delivery struct {
	Handle   string
	Event    *model.ClickEvent
	Attempts int
}

// DeadLetter is a job that exhausted its attempts or could not be decoded.
// Event is nil in the latter case.
type DeadLetter struct {
	Handle    string            `json:"handle"`
	Event     *model.ClickEvent `json:"event,omitempty"`
	Attempts  int               `json:"attempts"`
	LastError string            `json:"last_error"`
	FailedAt  time.Time         `json:"failed_at"`
}

// DecodeError reports a job payload that is not a click event
type DecodeError struct {
	Handle string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to unmarshal job %s: %v", e.Handle, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
