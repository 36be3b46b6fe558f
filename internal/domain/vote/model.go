package vote

import "errors"

// Vote is one client's choice of pilot within one race, keyed by the client's
// observed network address. Votes are insert-only.
type Vote struct {
	ID      int64
	RaceID  int64
	PilotID int64
	VoterIP string
}

// TallyRow is a per-pilot vote count for one race, joined with pilot data.
type TallyRow struct {
	PilotID   int64
	PilotName string
	Team      string
	Photo     string
	Votes     int64
}

var (
	// ErrDuplicate reports a second vote from the same address for the same
	// race. The storage uniqueness constraint is the source of truth here.
	ErrDuplicate = errors.New("duplicate vote for race and address")
	// ErrMissingReference reports a vote against an unknown race or pilot.
	ErrMissingReference = errors.New("vote references unknown race or pilot")
)
