package scoring

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
)

func newTestState() innings.State {
	return innings.NewState("inn-1", "match-1", "team-bat", "team-bowl", 1, 20, "bat-1", "bat-2", "bowl-1")
}

func mustApply(t *testing.T, s innings.State, ev BallEvent) (innings.State, innings.Ball) {
	t.Helper()
	next, ball, err := Apply(s, ev, DefaultRules())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	return next, ball
}

func TestDefaultRulesOverLengthMatchesStoredNumbering(t *testing.T) {
	if got := DefaultRules().BallsPerOver; got != innings.BallsPerOver {
		t.Fatalf("default over length %d diverges from innings.BallsPerOver %d", got, innings.BallsPerOver)
	}
}

func TestApply_RunsOffBat(t *testing.T) {
	state, ball := mustApply(t, newTestState(), BallEvent{RunsOffBat: 4})

	if state.Runs != 4 {
		t.Fatalf("unexpected total runs: %d", state.Runs)
	}
	if state.LegalBalls != 1 {
		t.Fatalf("unexpected legal balls: %d", state.LegalBalls)
	}
	fig := state.Batting["bat-1"]
	if fig.Runs != 4 || fig.BallsFaced != 1 || fig.Fours != 1 {
		t.Fatalf("unexpected batting figures: %+v", fig)
	}
	bowling := state.Bowling["bowl-1"]
	if bowling.RunsConceded != 4 || bowling.BallsBowled != 1 {
		t.Fatalf("unexpected bowling figures: %+v", bowling)
	}
	if ball.Over != 0 || ball.BallInOver != 1 {
		t.Fatalf("unexpected ball position: over=%d ball=%d", ball.Over, ball.BallInOver)
	}
	if state.StrikerID != "bat-1" {
		t.Fatalf("even runs must not rotate strike, striker=%s", state.StrikerID)
	}
}

func TestApply_OddRunsRotateStrike(t *testing.T) {
	state, _ := mustApply(t, newTestState(), BallEvent{RunsOffBat: 1})

	if state.StrikerID != "bat-2" || state.NonStrikerID != "bat-1" {
		t.Fatalf("expected strike rotation, striker=%s non-striker=%s", state.StrikerID, state.NonStrikerID)
	}
}

func TestApply_OverRollover(t *testing.T) {
	state := newTestState()
	for i := 0; i < 6; i++ {
		state, _ = mustApply(t, state, BallEvent{RunsOffBat: 1})
	}

	over, ballInOver := state.Overs()
	if over != 1 || ballInOver != 0 {
		t.Fatalf("unexpected over count: %d.%d", over, ballInOver)
	}
	// Six singles mean six swaps (original striker back on strike) plus the
	// end-of-over swap: the non-striker ends up facing.
	if state.StrikerID != "bat-2" {
		t.Fatalf("expected non-striker on strike after the over, got %s", state.StrikerID)
	}
}

func TestApply_EndOfOverRotationIndependentOfRuns(t *testing.T) {
	state := newTestState()
	for i := 0; i < 6; i++ {
		state, _ = mustApply(t, state, BallEvent{})
	}

	if state.Runs != 0 {
		t.Fatalf("unexpected runs from a maiden: %d", state.Runs)
	}
	if state.StrikerID != "bat-2" {
		t.Fatalf("end-of-over swap missing, striker=%s", state.StrikerID)
	}
}

func TestApply_WideDoesNotCountAsLegalBall(t *testing.T) {
	state, _ := mustApply(t, newTestState(), BallEvent{Extra: innings.ExtraWide, ExtraRuns: 1})

	if state.Runs != 1 {
		t.Fatalf("unexpected total runs: %d", state.Runs)
	}
	if state.Extras.Wides != 1 {
		t.Fatalf("unexpected wides: %d", state.Extras.Wides)
	}
	if state.LegalBalls != 0 {
		t.Fatalf("a wide must not count toward the over, legal balls=%d", state.LegalBalls)
	}
	fig := state.Batting["bat-1"]
	if fig.Runs != 0 || fig.BallsFaced != 0 {
		t.Fatalf("a wide must not touch the striker's figures: %+v", fig)
	}
	if state.Bowling["bowl-1"].RunsConceded != 1 {
		t.Fatalf("a wide is charged to the bowler")
	}
}

func TestApply_NoBallCreditsBatAndBowlerConcedes(t *testing.T) {
	state, _ := mustApply(t, newTestState(), BallEvent{
		Extra:      innings.ExtraNoBall,
		ExtraRuns:  1,
		RunsOffBat: 2,
	})

	if state.Runs != 3 {
		t.Fatalf("unexpected total runs: %d", state.Runs)
	}
	if state.Extras.NoBalls != 1 {
		t.Fatalf("unexpected no-ball extras: %d", state.Extras.NoBalls)
	}
	if state.LegalBalls != 0 {
		t.Fatalf("a no-ball must not count toward the over")
	}
	fig := state.Batting["bat-1"]
	if fig.Runs != 2 || fig.BallsFaced != 0 {
		t.Fatalf("unexpected striker figures off a no-ball: %+v", fig)
	}
	if state.Bowling["bowl-1"].RunsConceded != 3 {
		t.Fatalf("bowler must concede bat runs plus the penalty, got %d", state.Bowling["bowl-1"].RunsConceded)
	}
}

func TestApply_ByesAreNotTheStrikersRuns(t *testing.T) {
	state, _ := mustApply(t, newTestState(), BallEvent{Extra: innings.ExtraBye, ExtraRuns: 2})

	if state.Runs != 2 || state.Extras.Byes != 2 {
		t.Fatalf("unexpected totals: runs=%d byes=%d", state.Runs, state.Extras.Byes)
	}
	fig := state.Batting["bat-1"]
	if fig.Runs != 0 || fig.BallsFaced != 1 {
		t.Fatalf("byes still count a ball faced: %+v", fig)
	}
	if state.Bowling["bowl-1"].RunsConceded != 0 {
		t.Fatalf("byes are not conceded by the bowler")
	}
	if state.LegalBalls != 1 {
		t.Fatalf("a bye is a legal delivery")
	}
}

func TestApply_OddByesRotateStrike(t *testing.T) {
	state, _ := mustApply(t, newTestState(), BallEvent{Extra: innings.ExtraLegBye, ExtraRuns: 1})

	if state.StrikerID != "bat-2" {
		t.Fatalf("one leg-bye run must rotate strike, striker=%s", state.StrikerID)
	}
}

func TestApply_WicketRequiresReplacement(t *testing.T) {
	_, _, err := Apply(newTestState(), BallEvent{
		Wicket: &Wicket{Kind: innings.WicketBowled},
	}, DefaultRules())

	if !errors.Is(err, ErrNeedsNewBatsman) {
		t.Fatalf("expected ErrNeedsNewBatsman, got %v", err)
	}
}

func TestApply_WicketReplacementTakesDismissedEnd(t *testing.T) {
	state, ball := mustApply(t, newTestState(), BallEvent{
		Wicket: &Wicket{Kind: innings.WicketBowled, ReplacementID: "bat-3"},
	})

	if state.Wickets != 1 {
		t.Fatalf("unexpected wickets: %d", state.Wickets)
	}
	if !state.Batting["bat-1"].Out {
		t.Fatalf("dismissed batter not flagged out")
	}
	if state.StrikerID != "bat-3" || state.NonStrikerID != "bat-2" {
		t.Fatalf("replacement must take the dismissed end: striker=%s non-striker=%s", state.StrikerID, state.NonStrikerID)
	}
	if !ball.WicketFell || ball.DismissedID != "bat-1" {
		t.Fatalf("unexpected ball record: %+v", ball)
	}
}

func TestApply_BowlerCreditPolicy(t *testing.T) {
	state, _ := mustApply(t, newTestState(), BallEvent{
		Wicket: &Wicket{Kind: innings.WicketBowled, ReplacementID: "bat-3"},
	})
	if state.Bowling["bowl-1"].Wickets != 1 {
		t.Fatalf("bowled must credit the bowler")
	}

	state, _ = mustApply(t, state, BallEvent{
		RunsOffBat: 1,
		Wicket:     &Wicket{Kind: innings.WicketRunOut, DismissedID: "bat-3", ReplacementID: "bat-4"},
	})
	if state.Bowling["bowl-1"].Wickets != 1 {
		t.Fatalf("a run-out must not credit the bowler, got %d", state.Bowling["bowl-1"].Wickets)
	}
	if state.Wickets != 2 {
		t.Fatalf("unexpected wickets: %d", state.Wickets)
	}
}

func TestApply_DismissalPolicyOnIllegalDeliveries(t *testing.T) {
	_, _, err := Apply(newTestState(), BallEvent{
		Extra:     innings.ExtraNoBall,
		ExtraRuns: 1,
		Wicket:    &Wicket{Kind: innings.WicketBowled, ReplacementID: "bat-3"},
	}, DefaultRules())
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("bowled off a no-ball must be rejected, got %v", err)
	}

	state, _, err := Apply(newTestState(), BallEvent{
		Extra:     innings.ExtraWide,
		ExtraRuns: 1,
		Wicket:    &Wicket{Kind: innings.WicketStumped, ReplacementID: "bat-3"},
	}, DefaultRules())
	if err != nil {
		t.Fatalf("stumped off a wide is legal: %v", err)
	}
	if state.Wickets != 1 {
		t.Fatalf("unexpected wickets: %d", state.Wickets)
	}
}

func TestApply_TenthWicketCompletesInnings(t *testing.T) {
	state := newTestState()
	nextBatter := 3

	var err error
	for i := 0; i < 10; i++ {
		wicket := &Wicket{Kind: innings.WicketBowled}
		if i < 9 {
			wicket.ReplacementID = batterID(nextBatter)
			nextBatter++
		}
		state, _, err = Apply(state, BallEvent{Wicket: wicket}, DefaultRules())
		if err != nil {
			t.Fatalf("wicket %d failed: %v", i+1, err)
		}
	}

	if !state.Completed {
		t.Fatalf("ten wickets must complete the innings")
	}
	if state.Wickets != 10 {
		t.Fatalf("unexpected wickets: %d", state.Wickets)
	}

	_, _, err = Apply(state, BallEvent{RunsOffBat: 1}, DefaultRules())
	if !errors.Is(err, ErrInningsComplete) {
		t.Fatalf("expected ErrInningsComplete, got %v", err)
	}
}

func TestApply_OversLimitCompletesInnings(t *testing.T) {
	state := innings.NewState("inn-1", "match-1", "team-bat", "team-bowl", 1, 1, "bat-1", "bat-2", "bowl-1")

	var err error
	for i := 0; i < 6; i++ {
		state, _, err = Apply(state, BallEvent{}, DefaultRules())
		if err != nil {
			t.Fatalf("ball %d failed: %v", i+1, err)
		}
	}

	if !state.Completed {
		t.Fatalf("overs limit must complete the innings")
	}
	_, _, err = Apply(state, BallEvent{}, DefaultRules())
	if !errors.Is(err, ErrInningsComplete) {
		t.Fatalf("expected ErrInningsComplete, got %v", err)
	}
}

func TestApply_RejectsMalformedEvents(t *testing.T) {
	cases := map[string]BallEvent{
		"negative runs":          {RunsOffBat: -1},
		"wide with bat runs":     {Extra: innings.ExtraWide, ExtraRuns: 1, RunsOffBat: 2},
		"wide without penalty":   {Extra: innings.ExtraWide},
		"bye without runs":       {Extra: innings.ExtraBye},
		"unknown extra":          {Extra: innings.ExtraType("overthrow"), ExtraRuns: 1},
		"batsman not on strike":  {BatsmanID: "bat-2"},
		"stranger dismissed":     {Wicket: &Wicket{Kind: innings.WicketRunOut, DismissedID: "bat-9", ReplacementID: "bat-3"}},
		"unknown dismissal kind": {Wicket: &Wicket{Kind: innings.WicketKind("timed-out"), ReplacementID: "bat-3"}},
	}

	for name, ev := range cases {
		if _, _, err := Apply(newTestState(), ev, DefaultRules()); !errors.Is(err, ErrInvalidEvent) {
			t.Fatalf("%s: expected ErrInvalidEvent, got %v", name, err)
		}
	}
}

func TestReplay_MatchesIncrementalApplication(t *testing.T) {
	events := []BallEvent{
		{RunsOffBat: 1},
		{Extra: innings.ExtraWide, ExtraRuns: 1},
		{RunsOffBat: 4},
		{Extra: innings.ExtraNoBall, ExtraRuns: 1, RunsOffBat: 2},
		{Extra: innings.ExtraLegBye, ExtraRuns: 1},
		{RunsOffBat: 6},
		{Wicket: &Wicket{Kind: innings.WicketCaught, ReplacementID: "bat-3"}},
		{RunsOffBat: 3},
		{BowlerID: "bowl-2", RunsOffBat: 2},
	}

	state := newTestState()
	balls := make([]innings.Ball, 0, len(events))
	for idx, ev := range events {
		next, ball, err := Apply(state, ev, DefaultRules())
		if err != nil {
			t.Fatalf("event %d failed: %v", idx, err)
		}
		state = next
		balls = append(balls, ball)
	}

	replayed, err := Replay(newTestState(), balls, DefaultRules())
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if !reflect.DeepEqual(state, replayed) {
		t.Fatalf("replay diverged from incremental application:\nincremental: %+v\nreplayed:    %+v", state, replayed)
	}
}

func TestReplay_AllButLastIsUndo(t *testing.T) {
	events := []BallEvent{
		{RunsOffBat: 2},
		{RunsOffBat: 1},
		{Extra: innings.ExtraWide, ExtraRuns: 2},
		{Wicket: &Wicket{Kind: innings.WicketLBW, ReplacementID: "bat-3"}},
	}

	state := newTestState()
	balls := make([]innings.Ball, 0, len(events))
	for _, ev := range events {
		before := state
		next, ball, err := Apply(state, ev, DefaultRules())
		if err != nil {
			t.Fatalf("apply failed: %v", err)
		}

		undone, err := Replay(state.Base(), balls, DefaultRules())
		if err != nil {
			t.Fatalf("undo replay failed: %v", err)
		}
		if !reflect.DeepEqual(before, undone) {
			t.Fatalf("undo is not a strict left-inverse:\nbefore: %+v\nundone: %+v", before, undone)
		}

		state = next
		balls = append(balls, ball)
	}
}

func batterID(n int) string {
	return "bat-" + strconv.Itoa(n)
}
