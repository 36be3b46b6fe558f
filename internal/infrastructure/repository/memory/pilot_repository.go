package memory

import (
	"context"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
)

type PilotRepository struct {
	store *Store
}

func (r *PilotRepository) List(_ context.Context) ([]pilot.Pilot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]pilot.Pilot, 0, len(r.store.pilots))
	for _, id := range r.store.sortedPilotIDs() {
		out = append(out, r.store.pilots[id])
	}

	return out, nil
}

func (r *PilotRepository) GetByID(_ context.Context, pilotID int64) (pilot.Pilot, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.pilots[pilotID]
	if !ok {
		return pilot.Pilot{}, false, nil
	}

	return p, true, nil
}

func (r *PilotRepository) Create(_ context.Context, p pilot.Pilot) (pilot.Pilot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPilotID++
	p.ID = r.store.nextPilotID
	r.store.pilots[p.ID] = p

	return p, nil
}

func (r *PilotRepository) Update(_ context.Context, p pilot.Pilot) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pilots[p.ID]; !ok {
		return false, nil
	}
	r.store.pilots[p.ID] = p

	return true, nil
}

func (r *PilotRepository) Delete(_ context.Context, pilotID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pilots[pilotID]; !ok {
		return false, nil
	}

	delete(r.store.pilots, pilotID)
	delete(r.store.wins, pilotID)

	kept := r.store.votes[:0]
	for _, v := range r.store.votes {
		if v.PilotID != pilotID {
			kept = append(kept, v)
		}
	}
	r.store.votes = kept

	return true, nil
}
