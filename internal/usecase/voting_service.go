package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/racedaybr/pitvote/internal/domain/leaderboard"
	"github.com/racedaybr/pitvote/internal/domain/pilot"
	"github.com/racedaybr/pitvote/internal/domain/race"
	"github.com/racedaybr/pitvote/internal/domain/vote"
)

// TallyEntry is one pilot's share of a race tally. Percentage is rounded to
// two decimal places over the race total.
type TallyEntry struct {
	PilotID    int64
	PilotName  string
	Team       string
	Photo      string
	Votes      int64
	Percentage float64
}

// RaceResult is a full tally for one race.
type RaceResult struct {
	RaceID     int64
	RaceName   string
	Closed     bool
	TotalVotes int64
	Results    []TallyEntry
}

// VotingService owns vote casting, tallies, race closing and the cumulative
// leaderboard.
type VotingService struct {
	pilotRepo       pilot.Repository
	raceRepo        race.Repository
	voteRepo        vote.Repository
	leaderboardRepo leaderboard.Repository
}

func NewVotingService(
	pilotRepo pilot.Repository,
	raceRepo race.Repository,
	voteRepo vote.Repository,
	leaderboardRepo leaderboard.Repository,
) *VotingService {
	return &VotingService{
		pilotRepo:       pilotRepo,
		raceRepo:        raceRepo,
		voteRepo:        voteRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

// CastVote records one vote for a pilot in an open race. The voter address is
// the uniqueness key: a second vote from the same address for the same race
// returns ErrDuplicateVote no matter which pilot it names.
func (s *VotingService) CastVote(ctx context.Context, raceID, pilotID int64, voterIP string) (vote.Vote, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingService.CastVote")
	defer span.End()

	voterIP = strings.TrimSpace(voterIP)
	if raceID <= 0 || pilotID <= 0 {
		return vote.Vote{}, fmt.Errorf("%w: race and pilot ids must be positive", ErrInvalidInput)
	}
	if voterIP == "" {
		return vote.Vote{}, fmt.Errorf("%w: voter address is required", ErrInvalidInput)
	}

	r, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return vote.Vote{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return vote.Vote{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}
	if r.Closed {
		return vote.Vote{}, fmt.Errorf("%w: race=%d", ErrRaceClosed, raceID)
	}

	if _, exists, err = s.pilotRepo.GetByID(ctx, pilotID); err != nil {
		return vote.Vote{}, fmt.Errorf("get pilot: %w", err)
	} else if !exists {
		return vote.Vote{}, fmt.Errorf("%w: pilot=%d", ErrNotFound, pilotID)
	}

	created, err := s.voteRepo.Create(ctx, vote.Vote{
		RaceID:  raceID,
		PilotID: pilotID,
		VoterIP: voterIP,
	})
	if err != nil {
		// The unique constraint decides races between concurrent requests,
		// so the duplicate check happens on insert, not before it.
		if errors.Is(err, vote.ErrDuplicate) {
			return vote.Vote{}, fmt.Errorf("%w: race=%d", ErrDuplicateVote, raceID)
		}
		if errors.Is(err, vote.ErrMissingReference) {
			return vote.Vote{}, fmt.Errorf("%w: race=%d pilot=%d", ErrNotFound, raceID, pilotID)
		}

		return vote.Vote{}, fmt.Errorf("create vote: %w", err)
	}

	return created, nil
}

// Tally returns the per-pilot counts and percentages for one race. It works
// for open and closed races alike; a race with no votes yields an empty
// result list.
func (s *VotingService) Tally(ctx context.Context, raceID int64) (RaceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingService.Tally")
	defer span.End()

	if raceID <= 0 {
		return RaceResult{}, fmt.Errorf("%w: race id must be positive", ErrInvalidInput)
	}

	r, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return RaceResult{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return RaceResult{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	rows, err := s.voteRepo.TallyByRace(ctx, raceID)
	if err != nil {
		return RaceResult{}, fmt.Errorf("tally votes: %w", err)
	}

	total, err := s.voteRepo.CountByRace(ctx, raceID)
	if err != nil {
		return RaceResult{}, fmt.Errorf("count votes: %w", err)
	}

	result := RaceResult{
		RaceID:     r.ID,
		RaceName:   r.Name,
		Closed:     r.Closed,
		TotalVotes: total,
		Results:    make([]TallyEntry, 0, len(rows)),
	}
	for _, row := range rows {
		result.Results = append(result.Results, TallyEntry{
			PilotID:    row.PilotID,
			PilotName:  row.PilotName,
			Team:       row.Team,
			Photo:      row.Photo,
			Votes:      row.Votes,
			Percentage: percentage(row.Votes, total),
		})
	}

	return result, nil
}

// CloseVoting marks a race closed and credits the winning pilot one
// leaderboard win, all in one transaction owned by the race repository.
// Closing an already-closed race changes nothing and is not an error.
func (s *VotingService) CloseVoting(ctx context.Context, raceID int64) (race.CloseOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingService.CloseVoting")
	defer span.End()

	if raceID <= 0 {
		return race.CloseOutcome{}, fmt.Errorf("%w: race id must be positive", ErrInvalidInput)
	}

	outcome, exists, err := s.raceRepo.CloseVoting(ctx, raceID)
	if err != nil {
		return race.CloseOutcome{}, fmt.Errorf("close voting: %w", err)
	}
	if !exists {
		return race.CloseOutcome{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	return outcome, nil
}

func (s *VotingService) Leaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingService.Leaderboard")
	defer span.End()

	entries, err := s.leaderboardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	return entries, nil
}

func percentage(votes, total int64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(votes)/float64(total)*100*100) / 100
}
