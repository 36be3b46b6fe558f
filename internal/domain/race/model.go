package race

import (
	"fmt"
	"time"
)

// Race is a voting round with an open/closed state. Once Closed is true it
// never reopens through any exposed operation.
type Race struct {
	ID     int64
	Name   string
	Date   time.Time
	Closed bool
}

func (r Race) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("race name is required")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("race date is required")
	}

	return nil
}

// CloseOutcome reports what a close-voting call did.
type CloseOutcome struct {
	AlreadyClosed bool
	HasWinner     bool
	WinnerPilotID int64
}
