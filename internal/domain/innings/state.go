package innings

// BallsPerOver is the standard over length. Scoring rules may override the
// engine's copy, but stored over numbering and display use this value.
const BallsPerOver = 6

// State is the derived aggregate for one innings: totals, extras, strike
// holders and per-player figures. It is always recomputable from the ball
// sequence and must never drift from that fold.
type State struct {
	InningsID     string
	MatchID       string
	BattingTeamID string
	BowlingTeamID string
	Number        int

	Runs       int
	Wickets    int
	LegalBalls int
	Extras     Extras

	// OversLimit bounds legal deliveries; zero means unlimited.
	OversLimit   int
	StrikerID    string
	NonStrikerID string
	BowlerID     string
	Completed    bool

	// Opening configuration, kept so the aggregate can always be re-derived
	// by replaying the ball sequence from an empty innings.
	OpeningStrikerID    string
	OpeningNonStrikerID string
	OpeningBowlerID     string

	Batting map[string]BattingFigures
	Bowling map[string]BowlingFigures
	// BattingOrder records batters in order of arrival at the crease.
	BattingOrder []string
}

// NewState seeds an empty innings with its openers and opening bowler.
func NewState(inningsID, matchID, battingTeamID, bowlingTeamID string, number, oversLimit int, strikerID, nonStrikerID, bowlerID string) State {
	s := State{
		InningsID:           inningsID,
		MatchID:             matchID,
		BattingTeamID:       battingTeamID,
		BowlingTeamID:       bowlingTeamID,
		Number:              number,
		OversLimit:          oversLimit,
		StrikerID:           strikerID,
		NonStrikerID:        nonStrikerID,
		BowlerID:            bowlerID,
		OpeningStrikerID:    strikerID,
		OpeningNonStrikerID: nonStrikerID,
		OpeningBowlerID:     bowlerID,
		Batting:             make(map[string]BattingFigures, 11),
		Bowling:             make(map[string]BowlingFigures, 6),
	}
	s.touchBatter(strikerID)
	s.touchBatter(nonStrikerID)
	s.touchBowler(bowlerID)
	return s
}

// Base rebuilds the empty innings state this aggregate started from.
func (s State) Base() State {
	return NewState(
		s.InningsID, s.MatchID, s.BattingTeamID, s.BowlingTeamID,
		s.Number, s.OversLimit,
		s.OpeningStrikerID, s.OpeningNonStrikerID, s.OpeningBowlerID,
	)
}

// Overs returns completed overs and balls into the current over.
func (s State) Overs() (int, int) {
	return s.LegalBalls / BallsPerOver, s.LegalBalls % BallsPerOver
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the authoritative maps.
func (s State) Clone() State {
	out := s
	out.Batting = make(map[string]BattingFigures, len(s.Batting))
	for id, fig := range s.Batting {
		out.Batting[id] = fig
	}
	out.Bowling = make(map[string]BowlingFigures, len(s.Bowling))
	for id, fig := range s.Bowling {
		out.Bowling[id] = fig
	}
	out.BattingOrder = append([]string(nil), s.BattingOrder...)
	return out
}

func (s *State) touchBatter(playerID string) {
	if playerID == "" {
		return
	}
	if _, ok := s.Batting[playerID]; !ok {
		s.Batting[playerID] = BattingFigures{}
		s.BattingOrder = append(s.BattingOrder, playerID)
	}
}

func (s *State) touchBowler(playerID string) {
	if playerID == "" {
		return
	}
	if _, ok := s.Bowling[playerID]; !ok {
		s.Bowling[playerID] = BowlingFigures{}
	}
}

// AddBatterRuns mutates a batter's figures in place.
func (s *State) AddBatterRuns(playerID string, runs, ballsFaced int) {
	s.touchBatter(playerID)
	fig := s.Batting[playerID]
	fig.Runs += runs
	fig.BallsFaced += ballsFaced
	if runs == 4 {
		fig.Fours++
	}
	if runs == 6 {
		fig.Sixes++
	}
	s.Batting[playerID] = fig
}

// AddBowlerFigures mutates a bowler's figures in place.
func (s *State) AddBowlerFigures(playerID string, balls, runsConceded, wickets int) {
	s.touchBowler(playerID)
	fig := s.Bowling[playerID]
	fig.BallsBowled += balls
	fig.RunsConceded += runsConceded
	fig.Wickets += wickets
	s.Bowling[playerID] = fig
}

// MarkOut flags a batter dismissed.
func (s *State) MarkOut(playerID string) {
	s.touchBatter(playerID)
	fig := s.Batting[playerID]
	fig.Out = true
	s.Batting[playerID] = fig
}
