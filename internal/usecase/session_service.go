package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cricket-live/internal/domain/innings"
	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/domain/player"
	"github.com/riskibarqy/cricket-live/internal/domain/scoring"
	"github.com/riskibarqy/cricket-live/internal/platform/id"
)

const (
	eventMatchStarted = "match_started"
	eventBallUpdate   = "ball_update"
	eventBallUndone   = "ball_undone"

	defaultRestoreWorkers = 8
)

type StartInningsInput struct {
	MatchID       string
	BattingTeamID string
	StrikerID     string
	NonStrikerID  string
	BowlerID      string
}

// liveSession is the authoritative in-memory copy of one match's current
// innings. All reads and writes happen under mu, so per-match command order
// is total while distinct matches proceed in parallel.
type liveSession struct {
	mu     sync.Mutex
	loaded bool
	state  innings.State
	balls  []innings.Ball
}

type SessionService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	store      innings.Store
	idGen      id.Generator
	rules      scoring.Rules
	hub        Broadcaster

	sessionsMu sync.Mutex
	sessions   map[string]*liveSession
}

func NewSessionService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	store innings.Store,
	idGen id.Generator,
) *SessionService {
	return &SessionService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		store:      store,
		idGen:      idGen,
		rules:      scoring.DefaultRules(),
		sessions:   make(map[string]*liveSession),
	}
}

// SetBroadcaster attaches the live hub. Without one, accepted balls are
// persisted but not fanned out.
func (s *SessionService) SetBroadcaster(hub Broadcaster) {
	s.hub = hub
}

func (s *SessionService) SetRules(rules scoring.Rules) {
	s.rules = rules
}

// StartInnings opens the next innings of a live match and announces it.
func (s *SessionService) StartInnings(ctx context.Context, input StartInningsInput) (innings.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.StartInnings")
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.BattingTeamID = strings.TrimSpace(input.BattingTeamID)
	input.StrikerID = strings.TrimSpace(input.StrikerID)
	input.NonStrikerID = strings.TrimSpace(input.NonStrikerID)
	input.BowlerID = strings.TrimSpace(input.BowlerID)

	if input.MatchID == "" || input.BattingTeamID == "" {
		return innings.State{}, fmt.Errorf("%w: match_id and batting_team_id are required", ErrInvalidInput)
	}
	if input.StrikerID == "" || input.NonStrikerID == "" || input.BowlerID == "" {
		return innings.State{}, fmt.Errorf("%w: striker_id, non_striker_id and bowler_id are required", ErrInvalidInput)
	}
	if input.StrikerID == input.NonStrikerID {
		return innings.State{}, fmt.Errorf("%w: openers must be two distinct batters", ErrInvalidInput)
	}

	item, err := s.liveMatch(ctx, input.MatchID)
	if err != nil {
		return innings.State{}, err
	}

	bowlingTeamID := item.TeamAID
	switch input.BattingTeamID {
	case item.TeamAID:
		bowlingTeamID = item.TeamBID
	case item.TeamBID:
		bowlingTeamID = item.TeamAID
	default:
		return innings.State{}, fmt.Errorf("%w: team %q is not part of match %s", ErrInvalidInput, input.BattingTeamID, item.ID)
	}

	if err := s.checkPlayerTeam(ctx, input.StrikerID, input.BattingTeamID); err != nil {
		return innings.State{}, err
	}
	if err := s.checkPlayerTeam(ctx, input.NonStrikerID, input.BattingTeamID); err != nil {
		return innings.State{}, err
	}
	if err := s.checkPlayerTeam(ctx, input.BowlerID, bowlingTeamID); err != nil {
		return innings.State{}, err
	}

	session := s.session(item.ID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := s.ensureLoaded(ctx, item.ID, session); err != nil {
		return innings.State{}, err
	}
	if session.state.InningsID != "" && !session.state.Completed {
		return innings.State{}, fmt.Errorf("%w: innings %s of match %s", ErrInningsAlreadyActive, session.state.InningsID, item.ID)
	}

	inningsID, err := s.idGen.NewID("inn")
	if err != nil {
		return innings.State{}, fmt.Errorf("generate innings id: %w", err)
	}

	number := item.CurrentInnings + 1
	state := innings.NewState(
		inningsID, item.ID, input.BattingTeamID, bowlingTeamID,
		number, item.OversLimit,
		input.StrikerID, input.NonStrikerID, input.BowlerID,
	)

	previousInnings := item.CurrentInnings
	item.CurrentInnings = number
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return innings.State{}, fmt.Errorf("%w: update match: %v", ErrDependencyUnavailable, err)
	}

	if err := s.store.SaveAggregate(ctx, state); err != nil {
		// Roll the counter back so the match row never points at an innings
		// the store does not hold.
		item.CurrentInnings = previousInnings
		_ = s.matchRepo.Update(ctx, item)
		return innings.State{}, fmt.Errorf("%w: save innings: %v", ErrDependencyUnavailable, err)
	}

	session.state = state
	session.balls = nil
	session.loaded = true

	s.publish(item, eventMatchStarted, session)
	return state.Clone(), nil
}

// RecordBall folds one delivery into the match's authoritative state. The
// store write happens before the in-memory commit, so a storage failure
// leaves both the session and the viewers exactly where they were.
func (s *SessionService) RecordBall(ctx context.Context, matchID string, ev scoring.BallEvent) (innings.State, innings.Ball, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.RecordBall")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return innings.State{}, innings.Ball{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, err := s.liveMatch(ctx, matchID)
	if err != nil {
		return innings.State{}, innings.Ball{}, err
	}

	session := s.session(item.ID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := s.ensureLoaded(ctx, item.ID, session); err != nil {
		return innings.State{}, innings.Ball{}, err
	}
	if session.state.InningsID == "" {
		return innings.State{}, innings.Ball{}, fmt.Errorf("%w: match %s has no active innings", ErrInvalidInput, item.ID)
	}

	next, ball, err := scoring.Apply(session.state, ev, s.rules)
	if err != nil {
		return innings.State{}, innings.Ball{}, err
	}

	ballID, err := s.idGen.NewID("ball")
	if err != nil {
		return innings.State{}, innings.Ball{}, fmt.Errorf("generate ball id: %w", err)
	}
	ball.ID = ballID
	ball.Seq = len(session.balls) + 1

	if _, err := s.store.AppendBall(ctx, ball); err != nil {
		return innings.State{}, innings.Ball{}, fmt.Errorf("%w: append ball: %v", ErrDependencyUnavailable, err)
	}
	if err := s.store.SaveAggregate(ctx, next); err != nil {
		// Keep the log consistent with the aggregate we are about to refuse.
		_, _ = s.store.RemoveLastBall(ctx, session.state.InningsID)
		return innings.State{}, innings.Ball{}, fmt.Errorf("%w: save aggregate: %v", ErrDependencyUnavailable, err)
	}

	session.state = next
	session.balls = append(session.balls, ball)

	s.publish(item, eventBallUpdate, session)
	return next.Clone(), ball, nil
}

// UndoLastBall retracts the most recent delivery by replaying the remainder
// of the log from the opening state.
func (s *SessionService) UndoLastBall(ctx context.Context, matchID string) (innings.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.UndoLastBall")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return innings.State{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, err := s.liveMatch(ctx, matchID)
	if err != nil {
		return innings.State{}, err
	}

	session := s.session(item.ID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := s.ensureLoaded(ctx, item.ID, session); err != nil {
		return innings.State{}, err
	}
	if session.state.InningsID == "" {
		return innings.State{}, fmt.Errorf("%w: match %s has no active innings", ErrInvalidInput, item.ID)
	}
	if len(session.balls) == 0 {
		return innings.State{}, fmt.Errorf("%w: innings %s", scoring.ErrNothingToUndo, session.state.InningsID)
	}

	removed, err := s.store.RemoveLastBall(ctx, session.state.InningsID)
	if err != nil {
		if errors.Is(err, innings.ErrNoBalls) {
			return innings.State{}, fmt.Errorf("%w: innings %s", scoring.ErrNothingToUndo, session.state.InningsID)
		}
		return innings.State{}, fmt.Errorf("%w: remove last ball: %v", ErrDependencyUnavailable, err)
	}

	remaining := session.balls[:len(session.balls)-1]
	next, err := scoring.Replay(session.state.Base(), remaining, s.rules)
	if err != nil {
		return innings.State{}, fmt.Errorf("replay after undo: %w", err)
	}

	if err := s.store.SaveAggregate(ctx, next); err != nil {
		_, _ = s.store.AppendBall(ctx, removed)
		return innings.State{}, fmt.Errorf("%w: save aggregate: %v", ErrDependencyUnavailable, err)
	}

	session.state = next
	session.balls = append([]innings.Ball(nil), remaining...)

	s.publish(item, eventBallUndone, session)
	return next.Clone(), nil
}

// CurrentState returns a copy-snapshot of the match's current innings.
func (s *SessionService) CurrentState(ctx context.Context, matchID string) (innings.State, bool, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return innings.State{}, false, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return innings.State{}, false, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return innings.State{}, false, fmt.Errorf("%w: match %q", ErrNotFound, matchID)
	}

	session := s.session(matchID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := s.ensureLoaded(ctx, matchID, session); err != nil {
		return innings.State{}, false, err
	}
	if session.state.InningsID == "" {
		return innings.State{}, false, nil
	}
	return session.state.Clone(), true, nil
}

// ResyncSnapshot builds the full viewer payload for a match and hands it to
// deliver while the per-match mutex is still held. Every broadcast publish
// runs under the same mutex, so anything deliver enqueues is ordered against
// the update stream: no update enqueued before it is newer than the snapshot.
func (s *SessionService) ResyncSnapshot(ctx context.Context, matchID string, deliver func(LiveMatchData)) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match %q", ErrNotFound, matchID)
	}

	session := s.session(matchID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := s.ensureLoaded(ctx, matchID, session); err != nil {
		return err
	}
	deliver(buildLiveMatchData(item, session.state, session.balls))
	return nil
}

// RestoreLiveSessions rebuilds every live match's in-memory session from the
// store, replaying each ball log on a shared worker pool. Called once at
// startup so a restart does not serve stale or empty state.
func (s *SessionService) RestoreLiveSessions(ctx context.Context, maxWorkers int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.RestoreLiveSessions")
	defer span.End()

	matches, err := s.matchRepo.ListByStatus(ctx, match.StatusLive)
	if err != nil {
		return fmt.Errorf("list live matches: %w", err)
	}
	if len(matches) == 0 {
		return nil
	}

	workerCount := maxWorkers
	if workerCount <= 0 {
		workerCount = defaultRestoreWorkers
	}
	if workerCount > len(matches) {
		workerCount = len(matches)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create restore pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var failuresMu sync.Mutex
	var failures []error

	for _, item := range matches {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			session := s.session(item.ID)
			session.mu.Lock()
			defer session.mu.Unlock()

			if loadErr := s.ensureLoaded(ctx, item.ID, session); loadErr != nil {
				failuresMu.Lock()
				failures = append(failures, fmt.Errorf("restore match %s: %w", item.ID, loadErr))
				failuresMu.Unlock()
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit restore task: %w", err)
		}
	}

	workers.Wait()
	return errors.Join(failures...)
}

func (s *SessionService) session(matchID string) *liveSession {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	session, ok := s.sessions[matchID]
	if !ok {
		session = &liveSession{}
		s.sessions[matchID] = session
	}
	return session
}

// ensureLoaded rebuilds the session from the store after a process restart.
// The aggregate document only locates the current innings; the authoritative
// state is re-derived by replaying the ball log. Caller holds session.mu.
func (s *SessionService) ensureLoaded(ctx context.Context, matchID string, session *liveSession) error {
	if session.loaded {
		return nil
	}

	stored, exists, err := s.store.GetCurrentByMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("%w: load current innings: %v", ErrDependencyUnavailable, err)
	}
	if !exists {
		session.loaded = true
		return nil
	}

	balls, err := s.store.ListBalls(ctx, stored.InningsID)
	if err != nil {
		return fmt.Errorf("%w: load ball log: %v", ErrDependencyUnavailable, err)
	}
	state, err := scoring.Replay(stored.Base(), balls, s.rules)
	if err != nil {
		return fmt.Errorf("rebuild innings %s: %w", stored.InningsID, err)
	}

	session.state = state
	session.balls = balls
	session.loaded = true
	return nil
}

func (s *SessionService) liveMatch(ctx context.Context, matchID string) (match.Match, error) {
	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %q", ErrNotFound, matchID)
	}
	if !match.IsLiveStatus(item.Status) {
		return match.Match{}, fmt.Errorf("%w: match %s is %s", ErrMatchNotLive, item.ID, item.Status)
	}
	return item, nil
}

func (s *SessionService) checkPlayerTeam(ctx context.Context, playerID, teamID string) error {
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: unknown player %q", ErrInvalidInput, playerID)
	}
	if item.TeamID != teamID {
		return fmt.Errorf("%w: player %s does not play for team %s", ErrInvalidInput, playerID, teamID)
	}
	return nil
}

// publish runs inside the per-match critical section so hub enqueue order
// matches acceptance order. Caller holds session.mu.
func (s *SessionService) publish(item match.Match, kind string, session *liveSession) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(item.ID, kind, buildLiveMatchData(item, session.state, session.balls))
}
