package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
)

// InningsStore keeps ball logs and aggregates in process. Seq numbers and
// ball IDs are assigned on append so insertion order is the replay order.
type InningsStore struct {
	mu         sync.RWMutex
	balls      map[string][]innings.Ball
	aggregates map[string]innings.State
	// latest innings saved per match, whether or not it is still live
	currentByMatch map[string]string
	nextSeq        map[string]int
}

func NewInningsStore() *InningsStore {
	return &InningsStore{
		balls:          make(map[string][]innings.Ball),
		aggregates:     make(map[string]innings.State),
		currentByMatch: make(map[string]string),
		nextSeq:        make(map[string]int),
	}
}

func (s *InningsStore) AppendBall(_ context.Context, ball innings.Ball) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq[ball.InningsID]++
	ball.Seq = s.nextSeq[ball.InningsID]
	if ball.ID == "" {
		ball.ID = fmt.Sprintf("ball_%s_%d", ball.InningsID, ball.Seq)
	}
	s.balls[ball.InningsID] = append(s.balls[ball.InningsID], ball)
	return ball.ID, nil
}

func (s *InningsStore) RemoveLastBall(_ context.Context, inningsID string) (innings.Ball, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.balls[inningsID]
	if len(log) == 0 {
		return innings.Ball{}, innings.ErrNoBalls
	}
	last := log[len(log)-1]
	s.balls[inningsID] = log[:len(log)-1]
	s.nextSeq[inningsID] = last.Seq - 1
	return last, nil
}

func (s *InningsStore) ListBalls(_ context.Context, inningsID string) ([]innings.Ball, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]innings.Ball(nil), s.balls[inningsID]...), nil
}

func (s *InningsStore) SaveAggregate(_ context.Context, state innings.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.aggregates[state.InningsID] = state.Clone()
	s.currentByMatch[state.MatchID] = state.InningsID
	return nil
}

func (s *InningsStore) GetAggregate(_ context.Context, inningsID string) (innings.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.aggregates[inningsID]
	if !ok {
		return innings.State{}, false, nil
	}
	return state.Clone(), true, nil
}

func (s *InningsStore) GetCurrentByMatch(_ context.Context, matchID string) (innings.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inningsID, ok := s.currentByMatch[matchID]
	if !ok {
		return innings.State{}, false, nil
	}
	state, ok := s.aggregates[inningsID]
	if !ok {
		return innings.State{}, false, nil
	}
	return state.Clone(), true, nil
}
