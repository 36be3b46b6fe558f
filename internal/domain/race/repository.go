package race

import "context"

// Repository describes race persistence needs from use cases.
//
// Delete removes the race's votes and then the race inside one transaction,
// independent of any declarative cascade in the schema. CloseVoting runs the
// whole close sequence (mark closed, pick winner, bump leaderboard) as a
// single atomic unit; closing an already-closed race is a no-op.
type Repository interface {
	List(ctx context.Context) ([]Race, error)
	GetByID(ctx context.Context, raceID int64) (Race, bool, error)
	Create(ctx context.Context, r Race) (Race, error)
	Update(ctx context.Context, r Race) (bool, error)
	Delete(ctx context.Context, raceID int64) (bool, error)
	CloseVoting(ctx context.Context, raceID int64) (CloseOutcome, bool, error)
}
