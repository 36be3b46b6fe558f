package memory

import (
	"context"
	"sort"

	"github.com/racedaybr/pitvote/internal/domain/leaderboard"
)

type LeaderboardRepository struct {
	store *Store
}

func (r *LeaderboardRepository) List(_ context.Context) ([]leaderboard.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]leaderboard.Entry, 0, len(r.store.wins))
	for pilotID, wins := range r.store.wins {
		p := r.store.pilots[pilotID]
		out = append(out, leaderboard.Entry{
			PilotID:   pilotID,
			PilotName: p.Name,
			Team:      p.Team,
			Photo:     p.Photo,
			Wins:      wins,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].PilotName < out[j].PilotName
	})

	return out, nil
}
