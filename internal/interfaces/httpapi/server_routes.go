package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)

	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/start", handler.StartMatch)

	mux.HandleFunc("POST /v1/matches/{matchID}/innings", handler.StartInnings)
	mux.HandleFunc("POST /v1/matches/{matchID}/balls", handler.RecordBall)
	mux.HandleFunc("DELETE /v1/matches/{matchID}/balls/last", handler.UndoLastBall)
	mux.HandleFunc("GET /v1/matches/{matchID}/state", handler.GetCurrentState)
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/live", handler.LiveWebsocket)
}
