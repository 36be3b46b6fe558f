package memory

import (
	"context"
	"sort"

	"github.com/racedaybr/pitvote/internal/domain/race"
)

type RaceRepository struct {
	store *Store
}

func (r *RaceRepository) List(_ context.Context) ([]race.Race, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]race.Race, 0, len(r.store.races))
	for _, item := range r.store.races {
		out = append(out, item)
	}
	// Newest round first, matching the SQL ordering.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *RaceRepository) GetByID(_ context.Context, raceID int64) (race.Race, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.races[raceID]
	if !ok {
		return race.Race{}, false, nil
	}

	return item, true, nil
}

func (r *RaceRepository) Create(_ context.Context, item race.Race) (race.Race, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextRaceID++
	item.ID = r.store.nextRaceID
	r.store.races[item.ID] = item

	return item, nil
}

func (r *RaceRepository) Update(_ context.Context, item race.Race) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.races[item.ID]
	if !ok {
		return false, nil
	}
	// Edits never touch the closed flag, matching the SQL statement.
	item.Closed = current.Closed
	r.store.races[item.ID] = item

	return true, nil
}

func (r *RaceRepository) Delete(_ context.Context, raceID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.races[raceID]; !ok {
		return false, nil
	}

	delete(r.store.races, raceID)

	kept := r.store.votes[:0]
	for _, v := range r.store.votes {
		if v.RaceID != raceID {
			kept = append(kept, v)
		}
	}
	r.store.votes = kept

	return true, nil
}

func (r *RaceRepository) CloseVoting(_ context.Context, raceID int64) (race.CloseOutcome, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.races[raceID]
	if !ok {
		return race.CloseOutcome{}, false, nil
	}
	if item.Closed {
		return race.CloseOutcome{AlreadyClosed: true}, true, nil
	}

	item.Closed = true
	r.store.races[raceID] = item

	counts := make(map[int64]int64)
	for _, v := range r.store.votes {
		if v.RaceID == raceID {
			counts[v.PilotID]++
		}
	}

	var outcome race.CloseOutcome
	for pilotID, count := range counts {
		switch {
		case !outcome.HasWinner,
			count > counts[outcome.WinnerPilotID],
			count == counts[outcome.WinnerPilotID] && pilotID < outcome.WinnerPilotID:
			outcome.HasWinner = true
			outcome.WinnerPilotID = pilotID
		}
	}
	if outcome.HasWinner {
		r.store.wins[outcome.WinnerPilotID]++
	}

	return outcome, true, nil
}
