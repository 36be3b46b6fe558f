package pilot

import "context"

// Repository describes pilot persistence needs from use cases.
// Delete removes the pilot together with its votes and leaderboard row.
type Repository interface {
	List(ctx context.Context) ([]Pilot, error)
	GetByID(ctx context.Context, pilotID int64) (Pilot, bool, error)
	Create(ctx context.Context, p Pilot) (Pilot, error)
	Update(ctx context.Context, p Pilot) (bool, error)
	Delete(ctx context.Context, pilotID int64) (bool, error)
}
