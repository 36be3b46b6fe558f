package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Welcome)
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /pilotos", handler.ListPilots)
	mux.HandleFunc("GET /corridas", handler.ListRaces)
	mux.HandleFunc("POST /votar", handler.CastVote)
	mux.HandleFunc("GET /resultados/{raceID}", handler.GetRaceResults)
	mux.HandleFunc("GET /ranking-geral", handler.GetLeaderboard)
	mux.HandleFunc("POST /token", handler.IssueToken)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /admin/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))

	mux.Handle("POST /admin/pilotos", RequireAuth(verifier, http.HandlerFunc(handler.CreatePilot)))
	mux.Handle("PUT /admin/pilotos/{pilotID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePilot)))
	mux.Handle("DELETE /admin/pilotos/{pilotID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePilot)))

	mux.Handle("POST /admin/corridas", RequireAuth(verifier, http.HandlerFunc(handler.CreateRace)))
	mux.Handle("PUT /admin/corridas/{raceID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateRace)))
	mux.Handle("DELETE /admin/corridas/{raceID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteRace)))
	mux.Handle("PUT /admin/corridas/{raceID}/fechar-votacao", RequireAuth(verifier, http.HandlerFunc(handler.CloseRaceVoting)))
}
