package vote

import "context"

// Repository describes vote persistence needs from use cases.
//
// Create returns ErrDuplicate when the (race, voter address) pair already
// holds a vote and ErrMissingReference when the race or pilot is gone.
// TallyByRace returns counts ordered by votes descending, pilot id ascending.
type Repository interface {
	Create(ctx context.Context, v Vote) (Vote, error)
	TallyByRace(ctx context.Context, raceID int64) ([]TallyRow, error)
	CountByRace(ctx context.Context, raceID int64) (int64, error)
}
