package scoring

import (
	"fmt"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
)

// Wicket describes a dismissal riding on a delivery. ReplacementID names the
// incoming batter and may be empty only for an innings-ending wicket.
type Wicket struct {
	Kind          innings.WicketKind
	DismissedID   string
	ReplacementID string
}

// BallEvent is one delivery submitted by the scorer. BatsmanID, when set,
// must name the current striker; BowlerID, when set, switches the active
// bowler before the delivery is scored.
type BallEvent struct {
	BatsmanID  string
	BowlerID   string
	RunsOffBat int
	Extra      innings.ExtraType
	// ExtraRuns is the delivery's total extra-run count, penalty included:
	// a plain wide is ExtraRuns=1, a wide to the boundary is ExtraRuns=5.
	ExtraRuns  int
	Wicket     *Wicket
	Commentary string
}

func (ev BallEvent) validate(s innings.State) error {
	if ev.RunsOffBat < 0 || ev.RunsOffBat > 6 {
		return fmt.Errorf("%w: runs off bat %d out of range", ErrInvalidEvent, ev.RunsOffBat)
	}
	if ev.BatsmanID != "" && ev.BatsmanID != s.StrikerID {
		return fmt.Errorf("%w: batsman %s is not on strike", ErrInvalidEvent, ev.BatsmanID)
	}

	switch ev.Extra {
	case innings.ExtraNone:
		if ev.ExtraRuns != 0 {
			return fmt.Errorf("%w: extra runs without an extra type", ErrInvalidEvent)
		}
	case innings.ExtraWide:
		if ev.ExtraRuns < 1 {
			return fmt.Errorf("%w: a wide carries at least one extra run", ErrInvalidEvent)
		}
		if ev.RunsOffBat != 0 {
			return fmt.Errorf("%w: runs off bat are impossible on a wide", ErrInvalidEvent)
		}
	case innings.ExtraNoBall:
		if ev.ExtraRuns < 1 {
			return fmt.Errorf("%w: a no-ball carries at least one extra run", ErrInvalidEvent)
		}
	case innings.ExtraBye, innings.ExtraLegBye:
		if ev.ExtraRuns < 1 {
			return fmt.Errorf("%w: byes require at least one run", ErrInvalidEvent)
		}
		if ev.RunsOffBat != 0 {
			return fmt.Errorf("%w: byes and runs off bat are exclusive", ErrInvalidEvent)
		}
	default:
		return fmt.Errorf("%w: unknown extra type %q", ErrInvalidEvent, ev.Extra)
	}

	if ev.Wicket != nil {
		if _, ok := innings.ParseWicketKind(string(ev.Wicket.Kind)); !ok {
			return fmt.Errorf("%w: unknown wicket kind %q", ErrInvalidEvent, ev.Wicket.Kind)
		}
		dismissed := ev.Wicket.DismissedID
		if dismissed != "" && dismissed != s.StrikerID && dismissed != s.NonStrikerID {
			return fmt.Errorf("%w: dismissed player %s is not at the crease", ErrInvalidEvent, dismissed)
		}
	}

	return nil
}

// eventFromBall rebuilds the submitted event from a persisted log entry so
// an innings can be replayed from its ball sequence.
func eventFromBall(ball innings.Ball) BallEvent {
	ev := BallEvent{
		BatsmanID:  ball.BatsmanID,
		BowlerID:   ball.BowlerID,
		RunsOffBat: ball.RunsOffBat,
		Extra:      ball.ExtraType,
		ExtraRuns:  ball.ExtraRuns,
		Commentary: ball.Commentary,
	}
	if ball.WicketFell {
		ev.Wicket = &Wicket{
			Kind:          ball.WicketKind,
			DismissedID:   ball.DismissedID,
			ReplacementID: ball.ReplacementID,
		}
	}
	return ev
}
