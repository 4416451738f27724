package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-live/internal/livehub"
	"github.com/riskibarqy/cricket-live/internal/platform/id"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

const seededMatchID = "match_ind_aus_t20_01"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	store := memory.NewInningsStore()
	idGen := id.NewRandomGenerator()

	matchService := usecase.NewMatchService(matchRepo, teamRepo, playerRepo, idGen)
	sessionService := usecase.NewSessionService(matchRepo, playerRepo, store, idGen)
	hub := livehub.New(sessionService, logging.NewNop(), 0)
	t.Cleanup(hub.Close)
	sessionService.SetBroadcaster(hub)

	handler := NewHandler(matchService, sessionService, hub, slog.New(slog.DiscardHandler))
	return NewRouter(handler, slog.New(slog.DiscardHandler), []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (int, json.RawMessage) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		APIVersion string          `json:"apiVersion"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: unmarshal envelope: %v (body %s)", method, path, err, rec.Body.String())
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("%s %s: expected apiVersion=2.0, got %q", method, path, envelope.APIVersion)
	}

	return rec.Code, envelope.Data
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t)

	code, data := doRequest(t, router, http.MethodGet, "/healthz", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal healthz data: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", payload["status"])
	}
}

func TestHandler_ListTeamsAndPlayers(t *testing.T) {
	router := newTestRouter(t)

	code, data := doRequest(t, router, http.MethodGet, "/v1/teams", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	var teams []teamDTO
	if err := json.Unmarshal(data, &teams); err != nil {
		t.Fatalf("unmarshal teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 seeded teams, got %d", len(teams))
	}

	code, data = doRequest(t, router, http.MethodGet, "/v1/teams/ind/players", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	var players []playerDTO
	if err := json.Unmarshal(data, &players); err != nil {
		t.Fatalf("unmarshal players: %v", err)
	}
	if len(players) != 11 {
		t.Fatalf("expected 11 players, got %d", len(players))
	}

	code, _ = doRequest(t, router, http.MethodGet, "/v1/teams/unknown/players", "")
	if code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown team, got %d", code)
	}
}

func TestHandler_CreateMatch(t *testing.T) {
	router := newTestRouter(t)

	code, data := doRequest(t, router, http.MethodPost, "/v1/matches",
		`{"teamAId":"ind","teamBId":"aus","tossWinnerId":"aus","tossDecision":"bowl","format":"t20"}`)
	if code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", code)
	}
	var created matchDTO
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("unmarshal match: %v", err)
	}
	if created.ID == "" || created.Status != "setup" || created.OversLimit != 20 {
		t.Fatalf("unexpected created match: %+v", created)
	}

	code, _ = doRequest(t, router, http.MethodPost, "/v1/matches",
		`{"teamAId":"ind","teamBId":"aus","format":"t20","bogus":true}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown field, got %d", code)
	}

	code, _ = doRequest(t, router, http.MethodPost, "/v1/matches",
		`{"teamAId":"ind","teamBId":"aus"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing format, got %d", code)
	}
}

// TestHandler_ScoringFlow drives the seeded match through start, an innings,
// one scored ball, undo, and the state reads in between.
func TestHandler_ScoringFlow(t *testing.T) {
	router := newTestRouter(t)

	code, data := doRequest(t, router, http.MethodPost, "/v1/matches/"+seededMatchID+"/start", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200 starting match, got %d", code)
	}
	var started matchDTO
	if err := json.Unmarshal(data, &started); err != nil {
		t.Fatalf("unmarshal started match: %v", err)
	}
	if started.Status != "live" {
		t.Fatalf("expected live match, got %q", started.Status)
	}

	code, _ = doRequest(t, router, http.MethodGet, "/v1/matches/"+seededMatchID+"/state", "")
	if code != http.StatusNotFound {
		t.Fatalf("expected status 404 before any innings, got %d", code)
	}

	code, data = doRequest(t, router, http.MethodPost, "/v1/matches/"+seededMatchID+"/innings",
		`{"battingTeamId":"ind","strikerId":"ind-bat-01","nonStrikerId":"ind-bat-02","bowlerId":"aus-bwl-01"}`)
	if code != http.StatusCreated {
		t.Fatalf("expected status 201 starting innings, got %d", code)
	}
	var state inningsStateDTO
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("unmarshal innings state: %v", err)
	}
	if state.Number != 1 || state.StrikerID != "ind-bat-01" {
		t.Fatalf("unexpected opening state: %+v", state)
	}

	code, data = doRequest(t, router, http.MethodPost, "/v1/matches/"+seededMatchID+"/balls",
		`{"batsmanId":"ind-bat-01","runsOffBat":4}`)
	if code != http.StatusCreated {
		t.Fatalf("expected status 201 recording ball, got %d", code)
	}
	var recorded recordBallResponse
	if err := json.Unmarshal(data, &recorded); err != nil {
		t.Fatalf("unmarshal record ball response: %v", err)
	}
	if recorded.Ball.Seq != 1 || recorded.State.Runs != 4 {
		t.Fatalf("unexpected recorded ball: %+v", recorded)
	}

	code, _ = doRequest(t, router, http.MethodPost, "/v1/matches/"+seededMatchID+"/balls",
		`{"batsmanId":"ind-bat-01","extraType":"golden-duck"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown extra type, got %d", code)
	}

	code, data = doRequest(t, router, http.MethodGet, "/v1/matches/"+seededMatchID+"/state", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200 reading state, got %d", code)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if state.Runs != 4 || state.Overs != "0.1" {
		t.Fatalf("unexpected state after one ball: runs=%d overs=%s", state.Runs, state.Overs)
	}

	code, data = doRequest(t, router, http.MethodDelete, "/v1/matches/"+seededMatchID+"/balls/last", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200 undoing ball, got %d", code)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("unmarshal state after undo: %v", err)
	}
	if state.Runs != 0 || state.LegalBalls != 0 {
		t.Fatalf("expected pristine state after undo, got runs=%d legalBalls=%d", state.Runs, state.LegalBalls)
	}

	code, _ = doRequest(t, router, http.MethodDelete, "/v1/matches/"+seededMatchID+"/balls/last", "")
	if code != http.StatusConflict {
		t.Fatalf("expected status 409 undoing empty innings, got %d", code)
	}
}

func TestHandler_RecordBallOnSetupMatch(t *testing.T) {
	router := newTestRouter(t)

	code, _ := doRequest(t, router, http.MethodPost, "/v1/matches/"+seededMatchID+"/innings",
		`{"battingTeamId":"ind","strikerId":"ind-bat-01","nonStrikerId":"ind-bat-02","bowlerId":"aus-bwl-01"}`)
	if code != http.StatusConflict {
		t.Fatalf("expected status 409 for innings on setup match, got %d", code)
	}

	code, _ = doRequest(t, router, http.MethodGet, "/v1/matches/missing", "")
	if code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing match, got %d", code)
	}
}
