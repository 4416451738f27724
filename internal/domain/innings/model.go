package innings

import "strings"

// ExtraType classifies a delivery's extra, if any.
type ExtraType string

const (
	ExtraNone   ExtraType = "none"
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "noball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "legbye"
)

func ParseExtraType(value string) (ExtraType, bool) {
	normalized := ExtraType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return ExtraNone, true
	}
	switch normalized {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
		return normalized, true
	default:
		return "", false
	}
}

// IsIllegalDelivery reports whether the extra keeps the ball from counting
// toward the over.
func (e ExtraType) IsIllegalDelivery() bool {
	return e == ExtraWide || e == ExtraNoBall
}

// WicketKind names how a batter was dismissed.
type WicketKind string

const (
	WicketBowled    WicketKind = "bowled"
	WicketCaught    WicketKind = "caught"
	WicketLBW       WicketKind = "lbw"
	WicketStumped   WicketKind = "stumped"
	WicketRunOut    WicketKind = "runout"
	WicketHitWicket WicketKind = "hitwicket"
)

func ParseWicketKind(value string) (WicketKind, bool) {
	switch WicketKind(strings.ToLower(strings.TrimSpace(value))) {
	case WicketBowled:
		return WicketBowled, true
	case WicketCaught:
		return WicketCaught, true
	case WicketLBW:
		return WicketLBW, true
	case WicketStumped:
		return WicketStumped, true
	case WicketRunOut:
		return WicketRunOut, true
	case WicketHitWicket:
		return WicketHitWicket, true
	default:
		return "", false
	}
}

// Ball is one entry in an innings' append/retract log. The ordered ball
// sequence is the source of truth; every aggregate is a fold over it.
type Ball struct {
	ID            string
	InningsID     string
	Seq           int
	Over          int
	BallInOver    int
	BatsmanID     string
	BowlerID      string
	RunsOffBat    int
	ExtraType     ExtraType
	ExtraRuns     int
	WicketFell    bool
	WicketKind    WicketKind
	DismissedID   string
	ReplacementID string
	Commentary    string
}

// Extras is the per-kind extra-run breakdown for an innings.
type Extras struct {
	Wides   int
	NoBalls int
	Byes    int
	LegByes int
}

func (e Extras) Total() int {
	return e.Wides + e.NoBalls + e.Byes + e.LegByes
}

// BattingFigures is one batter's tally within an innings.
type BattingFigures struct {
	Runs       int
	BallsFaced int
	Fours      int
	Sixes      int
	Out        bool
}

// BowlingFigures is one bowler's tally within an innings.
type BowlingFigures struct {
	BallsBowled  int
	RunsConceded int
	Wickets      int
}
