package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/racedaybr/pitvote/internal/usecase"
)

func decodeErrorBody(t *testing.T, raw []byte) errorBody {
	t.Helper()

	var body errorResponse
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}

	return body.Error
}

func TestWriteError_MapsSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "race closed", err: fmt.Errorf("%w: race=7", usecase.ErrRaceClosed), wantStatus: http.StatusBadRequest, wantReason: "raceClosed"},
		{name: "duplicate vote", err: fmt.Errorf("%w: race=7", usecase.ErrDuplicateVote), wantStatus: http.StatusConflict, wantReason: "duplicateVote"},
		{name: "not found", err: fmt.Errorf("%w: race=7", usecase.ErrNotFound), wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{name: "unauthorized", err: fmt.Errorf("%w: bad credentials", usecase.ErrUnauthorized), wantStatus: http.StatusUnauthorized, wantReason: "unauthorized"},
		{name: "dependency unavailable", err: fmt.Errorf("%w: db down", usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			body := decodeErrorBody(t, rec.Body.Bytes())
			if body.Code != tt.wantStatus {
				t.Fatalf("expected body code %d, got %d", tt.wantStatus, body.Code)
			}
			if body.Reason != tt.wantReason {
				t.Fatalf("expected reason %q, got %q", tt.wantReason, body.Reason)
			}
		})
	}
}

func TestWriteError_UniformUnauthorizedMessage(t *testing.T) {
	causes := []error{
		fmt.Errorf("%w: missing Authorization header", usecase.ErrUnauthorized),
		fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized),
		fmt.Errorf("%w: unknown subject", usecase.ErrUnauthorized),
	}

	var bodies []string
	for _, cause := range causes {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, cause)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
		if body := decodeErrorBody(t, rec.Body.Bytes()); body.Message != unauthorizedMessage {
			t.Fatalf("expected constant message, got %q", body.Message)
		}
		bodies = append(bodies, rec.Body.String())
	}

	for _, body := range bodies[1:] {
		if body != bodies[0] {
			t.Fatalf("auth failure bodies differ:\n%s\n%s", bodies[0], body)
		}
	}
}

func TestWriteError_OpaqueInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("select pilots: connection refused to 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeErrorBody(t, rec.Body.Bytes())
	if body.Reason != "internalError" {
		t.Fatalf("expected reason internalError, got %q", body.Reason)
	}
	if body.Message != "internal server error" {
		t.Fatalf("expected opaque message, got %q", body.Message)
	}
}
