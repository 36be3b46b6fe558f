package httpapi

import (
	"fmt"
	"net/http"

	"github.com/racedaybr/pitvote/internal/usecase"
)

type castVoteRequest struct {
	RaceID  int64 `json:"race_id" validate:"required,gt=0"`
	PilotID int64 `json:"pilot_id" validate:"required,gt=0"`
}

type voteAcceptedDTO struct {
	ID      int64 `json:"id"`
	RaceID  int64 `json:"race_id"`
	PilotID int64 `json:"pilot_id"`
}

type tallyEntryDTO struct {
	PilotID    int64   `json:"pilot_id"`
	PilotName  string  `json:"pilot_name"`
	Team       string  `json:"team"`
	Photo      string  `json:"photo,omitempty"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type raceResultsDTO struct {
	RaceID     int64           `json:"race_id"`
	RaceName   string          `json:"race_name"`
	Closed     bool            `json:"closed"`
	TotalVotes int64           `json:"total_votes"`
	Results    []tallyEntryDTO `json:"results"`
}

type leaderboardEntryDTO struct {
	PilotID   int64  `json:"pilot_id"`
	PilotName string `json:"pilot_name"`
	Team      string `json:"team"`
	Photo     string `json:"photo,omitempty"`
	Wins      int64  `json:"wins"`
}

func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CastVote")
	defer span.End()

	var req castVoteRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	voterIP := resolveClientIP(r)
	if voterIP == "" {
		writeError(ctx, w, fmt.Errorf("%w: could not resolve client address", usecase.ErrInvalidInput))
		return
	}

	created, err := h.votingService.CastVote(ctx, req.RaceID, req.PilotID, voterIP)
	if err != nil {
		h.logger.WarnContext(ctx, "cast vote failed", "race_id", req.RaceID, "pilot_id", req.PilotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, voteAcceptedDTO{
		ID:      created.ID,
		RaceID:  created.RaceID,
		PilotID: created.PilotID,
	})
}

func (h *Handler) GetRaceResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceResults")
	defer span.End()

	raceID, err := parsePathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.votingService.Tally(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "tally failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	entries := make([]tallyEntryDTO, 0, len(result.Results))
	for _, entry := range result.Results {
		entries = append(entries, tallyEntryDTO{
			PilotID:    entry.PilotID,
			PilotName:  entry.PilotName,
			Team:       entry.Team,
			Photo:      entry.Photo,
			Votes:      entry.Votes,
			Percentage: entry.Percentage,
		})
	}

	writeJSON(ctx, w, http.StatusOK, raceResultsDTO{
		RaceID:     result.RaceID,
		RaceName:   result.RaceName,
		Closed:     result.Closed,
		TotalVotes: result.TotalVotes,
		Results:    entries,
	})
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	entries, err := h.votingService.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leaderboardEntryDTO{
			PilotID:   entry.PilotID,
			PilotName: entry.PilotName,
			Team:      entry.Team,
			Photo:     entry.Photo,
			Wins:      entry.Wins,
		})
	}

	writeJSON(ctx, w, http.StatusOK, items)
}
