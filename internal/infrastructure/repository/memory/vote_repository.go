package memory

import (
	"context"
	"sort"

	"github.com/racedaybr/pitvote/internal/domain/vote"
)

type VoteRepository struct {
	store *Store
}

func (r *VoteRepository) Create(_ context.Context, v vote.Vote) (vote.Vote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.races[v.RaceID]; !ok {
		return vote.Vote{}, vote.ErrMissingReference
	}
	if _, ok := r.store.pilots[v.PilotID]; !ok {
		return vote.Vote{}, vote.ErrMissingReference
	}
	for _, existing := range r.store.votes {
		if existing.RaceID == v.RaceID && existing.VoterIP == v.VoterIP {
			return vote.Vote{}, vote.ErrDuplicate
		}
	}

	r.store.nextVoteID++
	v.ID = r.store.nextVoteID
	r.store.votes = append(r.store.votes, v)

	return v, nil
}

func (r *VoteRepository) TallyByRace(_ context.Context, raceID int64) ([]vote.TallyRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[int64]int64)
	for _, v := range r.store.votes {
		if v.RaceID == raceID {
			counts[v.PilotID]++
		}
	}

	out := make([]vote.TallyRow, 0, len(counts))
	for pilotID, count := range counts {
		p := r.store.pilots[pilotID]
		out = append(out, vote.TallyRow{
			PilotID:   pilotID,
			PilotName: p.Name,
			Team:      p.Team,
			Photo:     p.Photo,
			Votes:     count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].PilotID < out[j].PilotID
	})

	return out, nil
}

func (r *VoteRepository) CountByRace(_ context.Context, raceID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total int64
	for _, v := range r.store.votes {
		if v.RaceID == raceID {
			total++
		}
	}

	return total, nil
}
