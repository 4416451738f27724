package scoring

import "github.com/riskibarqy/cricket-live/internal/domain/innings"

// Rules is the swappable policy table driving the engine. The governing
// body's exact no-ball dismissal exemptions vary by competition, so they are
// data here rather than branches in the engine.
type Rules struct {
	BallsPerOver int
	WicketsLimit int
	// BowlerCredit marks dismissal kinds attributed to the bowler.
	BowlerCredit map[innings.WicketKind]bool
	// NoBallDismissals marks kinds that remain valid off a no-ball.
	NoBallDismissals map[innings.WicketKind]bool
	// WideDismissals marks kinds that remain valid off a wide.
	WideDismissals map[innings.WicketKind]bool
}

func DefaultRules() Rules {
	return Rules{
		BallsPerOver: innings.BallsPerOver,
		WicketsLimit: 10,
		BowlerCredit: map[innings.WicketKind]bool{
			innings.WicketBowled:    true,
			innings.WicketCaught:    true,
			innings.WicketLBW:       true,
			innings.WicketStumped:   true,
			innings.WicketHitWicket: true,
		},
		NoBallDismissals: map[innings.WicketKind]bool{
			innings.WicketRunOut: true,
		},
		WideDismissals: map[innings.WicketKind]bool{
			innings.WicketRunOut:  true,
			innings.WicketStumped: true,
		},
	}
}

func (r Rules) bowlerCredited(kind innings.WicketKind) bool {
	return r.BowlerCredit[kind]
}

func (r Rules) dismissalAllowed(extra innings.ExtraType, kind innings.WicketKind) bool {
	switch extra {
	case innings.ExtraNoBall:
		return r.NoBallDismissals[kind]
	case innings.ExtraWide:
		return r.WideDismissals[kind]
	default:
		return true
	}
}
