package httpapi

import (
	"fmt"
	"net/http"

	"github.com/racedaybr/pitvote/internal/usecase"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type meResponse struct {
	Username string `json:"username"`
}

// IssueToken exchanges form-encoded credentials for a bearer token.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IssueToken")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid form payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	accessToken, err := h.authService.Login(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	writeJSON(ctx, w, http.StatusOK, meResponse{Username: principal.Username})
}
