package httpapi

import (
	"net/http"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
)

type pilotDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Photo string `json:"photo,omitempty"`
}

type pilotUpsertRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Team  string `json:"team" validate:"required,max=120"`
	Photo string `json:"photo" validate:"omitempty,url"`
}

func pilotToDTO(p pilot.Pilot) pilotDTO {
	return pilotDTO{
		ID:    p.ID,
		Name:  p.Name,
		Team:  p.Team,
		Photo: p.Photo,
	}
}

func (h *Handler) ListPilots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPilots")
	defer span.End()

	pilots, err := h.catalogService.ListPilots(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list pilots failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pilotDTO, 0, len(pilots))
	for _, p := range pilots {
		items = append(items, pilotToDTO(p))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePilot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePilot")
	defer span.End()

	var req pilotUpsertRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreatePilot(ctx, pilot.Pilot{
		Name:  req.Name,
		Team:  req.Team,
		Photo: req.Photo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create pilot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, pilotToDTO(created))
}

func (h *Handler) UpdatePilot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePilot")
	defer span.End()

	pilotID, err := parsePathID(r, "pilotID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req pilotUpsertRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.catalogService.UpdatePilot(ctx, pilot.Pilot{
		ID:    pilotID,
		Name:  req.Name,
		Team:  req.Team,
		Photo: req.Photo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update pilot failed", "pilot_id", pilotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, pilotToDTO(updated))
}

func (h *Handler) DeletePilot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePilot")
	defer span.End()

	pilotID, err := parsePathID(r, "pilotID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.catalogService.DeletePilot(ctx, pilotID); err != nil {
		h.logger.WarnContext(ctx, "delete pilot failed", "pilot_id", pilotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
