package leaderboard

import "context"

// Repository describes leaderboard reads from use cases. Writes happen only
// inside the race close transaction, owned by the race repository.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}
