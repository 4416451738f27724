package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
	"github.com/riskibarqy/cricket-live/internal/domain/scoring"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

type startInningsRequest struct {
	BattingTeamID string `json:"battingTeamId" validate:"required"`
	StrikerID     string `json:"strikerId" validate:"required"`
	NonStrikerID  string `json:"nonStrikerId" validate:"required"`
	BowlerID      string `json:"bowlerId" validate:"required"`
}

type wicketRequest struct {
	Kind          string `json:"kind" validate:"required"`
	DismissedID   string `json:"dismissedId"`
	ReplacementID string `json:"replacementId"`
}

type recordBallRequest struct {
	BatsmanID  string         `json:"batsmanId"`
	BowlerID   string         `json:"bowlerId"`
	RunsOffBat int            `json:"runsOffBat" validate:"gte=0,lte=6"`
	ExtraType  string         `json:"extraType"`
	ExtraRuns  int            `json:"extraRuns" validate:"gte=0"`
	Wicket     *wicketRequest `json:"wicket"`
	Commentary string         `json:"commentary" validate:"max=500"`
}

type recordBallResponse struct {
	State inningsStateDTO `json:"state"`
	Ball  ballDTO         `json:"ball"`
}

func (h *Handler) StartInnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartInnings")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req startInningsRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.StartInnings(ctx, usecase.StartInningsInput{
		MatchID:       matchID,
		BattingTeamID: req.BattingTeamID,
		StrikerID:     req.StrikerID,
		NonStrikerID:  req.NonStrikerID,
		BowlerID:      req.BowlerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start innings failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, stateToDTO(state))
}

func (h *Handler) RecordBall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordBall")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordBallRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	ev, err := ballEventFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, ball, err := h.sessionService.RecordBall(ctx, matchID, ev)
	if err != nil {
		h.logger.WarnContext(ctx, "record ball failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordBallResponse{
		State: stateToDTO(state),
		Ball:  ballToDTO(ball),
	})
}

func (h *Handler) UndoLastBall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UndoLastBall")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	state, err := h.sessionService.UndoLastBall(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "undo last ball failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(state))
}

func (h *Handler) GetCurrentState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentState")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	state, active, err := h.sessionService.CurrentState(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current state failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !active {
		writeError(ctx, w, fmt.Errorf("%w: match %s has no innings in progress", usecase.ErrNotFound, matchID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(state))
}

func ballEventFromRequest(req recordBallRequest) (scoring.BallEvent, error) {
	extraType, ok := innings.ParseExtraType(req.ExtraType)
	if !ok {
		return scoring.BallEvent{}, fmt.Errorf("%w: unknown extra type %q", usecase.ErrInvalidInput, req.ExtraType)
	}

	ev := scoring.BallEvent{
		BatsmanID:  req.BatsmanID,
		BowlerID:   req.BowlerID,
		RunsOffBat: req.RunsOffBat,
		Extra:      extraType,
		ExtraRuns:  req.ExtraRuns,
		Commentary: req.Commentary,
	}

	if req.Wicket != nil {
		kind, ok := innings.ParseWicketKind(req.Wicket.Kind)
		if !ok {
			return scoring.BallEvent{}, fmt.Errorf("%w: unknown wicket kind %q", usecase.ErrInvalidInput, req.Wicket.Kind)
		}
		ev.Wicket = &scoring.Wicket{
			Kind:          kind,
			DismissedID:   req.Wicket.DismissedID,
			ReplacementID: req.Wicket.ReplacementID,
		}
	}

	return ev, nil
}
