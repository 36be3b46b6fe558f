package memory

import (
	"sort"
	"sync"

	"github.com/racedaybr/pitvote/internal/domain/admin"
	"github.com/racedaybr/pitvote/internal/domain/pilot"
	"github.com/racedaybr/pitvote/internal/domain/race"
	"github.com/racedaybr/pitvote/internal/domain/vote"
)

// Store holds all tables behind one mutex so cross-entity operations
// (pilot delete cascades, race closing) stay atomic, the same way a
// single database transaction would.
type Store struct {
	mu sync.RWMutex

	pilots map[int64]pilot.Pilot
	races  map[int64]race.Race
	votes  []vote.Vote
	wins   map[int64]int64
	admins map[string]admin.Credential

	nextPilotID int64
	nextRaceID  int64
	nextVoteID  int64
	nextAdminID int64
}

func NewStore() *Store {
	return &Store{
		pilots: make(map[int64]pilot.Pilot),
		races:  make(map[int64]race.Race),
		wins:   make(map[int64]int64),
		admins: make(map[string]admin.Credential),
	}
}

func (s *Store) Pilots() *PilotRepository             { return &PilotRepository{store: s} }
func (s *Store) Races() *RaceRepository               { return &RaceRepository{store: s} }
func (s *Store) Votes() *VoteRepository               { return &VoteRepository{store: s} }
func (s *Store) Leaderboard() *LeaderboardRepository  { return &LeaderboardRepository{store: s} }
func (s *Store) Admins() *AdminRepository             { return &AdminRepository{store: s} }

// sortedPilotIDs returns pilot ids in ascending order for stable listings.
func (s *Store) sortedPilotIDs() []int64 {
	ids := make([]int64, 0, len(s.pilots))
	for id := range s.pilots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

