package httpapi

import (
	"net/http"

	"github.com/racedaybr/pitvote/internal/domain/race"
)

type raceDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Closed bool   `json:"closed"`
}

type raceUpsertRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Date string `json:"date" validate:"required"`
}

type closeVotingResponse struct {
	RaceID        int64  `json:"race_id"`
	AlreadyClosed bool   `json:"already_closed"`
	WinnerPilotID *int64 `json:"winner_pilot_id"`
}

func raceToDTO(r race.Race) raceDTO {
	return raceDTO{
		ID:     r.ID,
		Name:   r.Name,
		Date:   r.Date.Format(raceDateFormat),
		Closed: r.Closed,
	}
}

func (h *Handler) ListRaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRaces")
	defer span.End()

	races, err := h.catalogService.ListRaces(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list races failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]raceDTO, 0, len(races))
	for _, item := range races {
		items = append(items, raceToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRace")
	defer span.End()

	var req raceUpsertRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseRaceDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateRace(ctx, race.Race{Name: req.Name, Date: date})
	if err != nil {
		h.logger.WarnContext(ctx, "create race failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, raceToDTO(created))
}

func (h *Handler) UpdateRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRace")
	defer span.End()

	raceID, err := parsePathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req raceUpsertRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseRaceDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.catalogService.UpdateRace(ctx, race.Race{ID: raceID, Name: req.Name, Date: date})
	if err != nil {
		h.logger.WarnContext(ctx, "update race failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, raceToDTO(updated))
}

func (h *Handler) DeleteRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRace")
	defer span.End()

	raceID, err := parsePathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.catalogService.DeleteRace(ctx, raceID); err != nil {
		h.logger.WarnContext(ctx, "delete race failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CloseRaceVoting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseRaceVoting")
	defer span.End()

	raceID, err := parsePathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.votingService.CloseVoting(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "close voting failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	resp := closeVotingResponse{RaceID: raceID, AlreadyClosed: outcome.AlreadyClosed}
	if outcome.HasWinner {
		resp.WinnerPilotID = &outcome.WinnerPilotID
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
