package scoring

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
)

var (
	ErrInvalidEvent    = errors.New("invalid ball event")
	ErrInningsComplete = errors.New("innings is complete")
	ErrNeedsNewBatsman = errors.New("wicket requires a replacement batsman")
	ErrNothingToUndo   = errors.New("no balls recorded to undo")
)

// Apply folds one delivery into the innings aggregate and returns the next
// aggregate plus the log entry to persist. It is pure: the input state is
// never mutated, and any error leaves the caller's state untouched.
func Apply(s innings.State, ev BallEvent, rules Rules) (innings.State, innings.Ball, error) {
	if s.Completed {
		return innings.State{}, innings.Ball{}, fmt.Errorf("%w: innings %s", ErrInningsComplete, s.InningsID)
	}
	if err := ev.validate(s); err != nil {
		return innings.State{}, innings.Ball{}, err
	}

	next := s.Clone()
	if ev.BowlerID != "" {
		next.BowlerID = ev.BowlerID
	}
	bowlerID := next.BowlerID

	legal := !ev.Extra.IsIllegalDelivery()
	extraDelta := ev.ExtraRuns

	next.Runs += ev.RunsOffBat + extraDelta
	switch ev.Extra {
	case innings.ExtraWide:
		next.Extras.Wides += extraDelta
	case innings.ExtraNoBall:
		next.Extras.NoBalls += extraDelta
	case innings.ExtraBye:
		next.Extras.Byes += extraDelta
	case innings.ExtraLegBye:
		next.Extras.LegByes += extraDelta
	}

	// Wides are the only delivery the striker never faces.
	if ev.Extra != innings.ExtraWide {
		faced := 0
		if legal {
			faced = 1
		}
		next.AddBatterRuns(next.StrikerID, ev.RunsOffBat, faced)
	}

	// Byes and leg-byes are not charged to the bowler; wides and no-balls are.
	conceded := ev.RunsOffBat
	if ev.Extra == innings.ExtraWide || ev.Extra == innings.ExtraNoBall {
		conceded += extraDelta
	}
	bowlerBalls := 0
	if legal {
		bowlerBalls = 1
	}
	next.AddBowlerFigures(bowlerID, bowlerBalls, conceded, 0)

	// Strike rotates on the runs the batters physically ran: runs off bat,
	// byes and leg-byes, and extras beyond the one-run wide/no-ball penalty.
	runsRun := ev.RunsOffBat
	switch ev.Extra {
	case innings.ExtraBye, innings.ExtraLegBye:
		runsRun += extraDelta
	case innings.ExtraWide, innings.ExtraNoBall:
		runsRun += extraDelta - 1
	}
	if runsRun%2 == 1 {
		next.StrikerID, next.NonStrikerID = next.NonStrikerID, next.StrikerID
	}

	if ev.Wicket != nil {
		if !rules.dismissalAllowed(ev.Extra, ev.Wicket.Kind) {
			return innings.State{}, innings.Ball{}, fmt.Errorf("%w: %s cannot fall off a %s", ErrInvalidEvent, ev.Wicket.Kind, ev.Extra)
		}

		dismissed := ev.Wicket.DismissedID
		if dismissed == "" {
			dismissed = s.StrikerID
		}

		next.Wickets++
		next.MarkOut(dismissed)
		if rules.bowlerCredited(ev.Wicket.Kind) {
			next.AddBowlerFigures(bowlerID, 0, 0, 1)
		}

		terminal := next.Wickets >= rules.WicketsLimit
		if !terminal && ev.Wicket.ReplacementID == "" {
			return innings.State{}, innings.Ball{}, fmt.Errorf("%w: %s dismissed", ErrNeedsNewBatsman, dismissed)
		}

		replacement := ""
		if !terminal {
			replacement = ev.Wicket.ReplacementID
		}
		switch dismissed {
		case next.StrikerID:
			next.StrikerID = replacement
		case next.NonStrikerID:
			next.NonStrikerID = replacement
		}
		if replacement != "" {
			next.AddBatterRuns(replacement, 0, 0)
		}
	}

	over := s.LegalBalls / rules.BallsPerOver
	ballInOver := s.LegalBalls%rules.BallsPerOver + 1
	if legal {
		next.LegalBalls++
		// End-of-over rotation happens regardless of runs scored.
		if next.LegalBalls%rules.BallsPerOver == 0 {
			next.StrikerID, next.NonStrikerID = next.NonStrikerID, next.StrikerID
		}
	}

	if next.Wickets >= rules.WicketsLimit {
		next.Completed = true
	}
	if s.OversLimit > 0 && next.LegalBalls >= s.OversLimit*rules.BallsPerOver {
		next.Completed = true
	}

	ball := innings.Ball{
		InningsID:  s.InningsID,
		Over:       over,
		BallInOver: ballInOver,
		BatsmanID:  s.StrikerID,
		BowlerID:   bowlerID,
		RunsOffBat: ev.RunsOffBat,
		ExtraType:  ev.Extra,
		ExtraRuns:  ev.ExtraRuns,
		Commentary: ev.Commentary,
	}
	if ev.Wicket != nil {
		ball.WicketFell = true
		ball.WicketKind = ev.Wicket.Kind
		ball.DismissedID = ev.Wicket.DismissedID
		if ball.DismissedID == "" {
			ball.DismissedID = s.StrikerID
		}
		ball.ReplacementID = ev.Wicket.ReplacementID
	}

	return next, ball, nil
}

// Replay folds an ordered ball sequence over a base (empty) innings state.
// Undo is expressed through it: replaying all but the last ball is the exact
// inverse of applying that ball, which stays correct even for operations with
// no cheap arithmetic inverse such as strike rotation and over rollover.
func Replay(base innings.State, balls []innings.Ball, rules Rules) (innings.State, error) {
	state := base.Clone()
	for idx, ball := range balls {
		next, _, err := Apply(state, eventFromBall(ball), rules)
		if err != nil {
			return innings.State{}, fmt.Errorf("replay ball %d of innings %s: %w", idx+1, base.InningsID, err)
		}
		state = next
	}
	return state, nil
}
