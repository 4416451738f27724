package usecase

import (
	"fmt"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

// recentBallWindow bounds the recentBalls slice in every snapshot.
const recentBallWindow = 12

// Broadcaster fans a full snapshot out to every viewer of a match. Publish
// must not block the caller; slow viewers are the hub's problem.
type Broadcaster interface {
	Publish(matchID, kind string, data LiveMatchData)
}

// LiveMatchData is the complete viewer snapshot. Every push carries the whole
// thing so a late joiner and a longtime viewer render the same scoreboard.
type LiveMatchData struct {
	Match          MatchView    `json:"match"`
	CurrentInnings *InningsView `json:"currentInnings,omitempty"`
	RecentBalls    []BallView   `json:"recentBalls"`
	CurrentBatsmen []BatterView `json:"currentBatsmen"`
	CurrentBowler  *BowlerView  `json:"currentBowler,omitempty"`
}

type MatchView struct {
	ID             string `json:"id"`
	TeamAID        string `json:"teamAId"`
	TeamBID        string `json:"teamBId"`
	Format         string `json:"format"`
	OversLimit     int    `json:"oversLimit"`
	Status         string `json:"status"`
	CurrentInnings int    `json:"currentInnings"`
}

type InningsView struct {
	ID            string       `json:"id"`
	Number        int          `json:"number"`
	BattingTeamID string       `json:"battingTeamId"`
	BowlingTeamID string       `json:"bowlingTeamId"`
	Runs          int          `json:"runs"`
	Wickets       int          `json:"wickets"`
	Overs         string       `json:"overs"`
	LegalBalls    int          `json:"legalBalls"`
	Extras        ExtrasView   `json:"extras"`
	Completed     bool         `json:"completed"`
	Balls         []BallView   `json:"balls"`
	Batting       []BatterView `json:"batting"`
	Bowling       []BowlerView `json:"bowling"`
}

type ExtrasView struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"noBalls"`
	Byes    int `json:"byes"`
	LegByes int `json:"legByes"`
	Total   int `json:"total"`
}

type BallView struct {
	ID            string `json:"id"`
	Seq           int    `json:"seq"`
	Over          int    `json:"over"`
	BallInOver    int    `json:"ballInOver"`
	BatsmanID     string `json:"batsmanId"`
	BowlerID      string `json:"bowlerId"`
	RunsOffBat    int    `json:"runsOffBat"`
	ExtraType     string `json:"extraType"`
	ExtraRuns     int    `json:"extraRuns"`
	WicketFell    bool   `json:"wicketFell"`
	WicketKind    string `json:"wicketKind,omitempty"`
	DismissedID   string `json:"dismissedId,omitempty"`
	ReplacementID string `json:"replacementId,omitempty"`
	Commentary    string `json:"commentary,omitempty"`
}

type BatterView struct {
	PlayerID   string `json:"playerId"`
	Runs       int    `json:"runs"`
	BallsFaced int    `json:"ballsFaced"`
	Fours      int    `json:"fours"`
	Sixes      int    `json:"sixes"`
	Out        bool   `json:"out"`
	OnStrike   bool   `json:"onStrike"`
}

type BowlerView struct {
	PlayerID     string `json:"playerId"`
	BallsBowled  int    `json:"ballsBowled"`
	RunsConceded int    `json:"runsConceded"`
	Wickets      int    `json:"wickets"`
	Overs        string `json:"overs"`
}

func buildLiveMatchData(item match.Match, state innings.State, balls []innings.Ball) LiveMatchData {
	data := LiveMatchData{
		Match: MatchView{
			ID:             item.ID,
			TeamAID:        item.TeamAID,
			TeamBID:        item.TeamBID,
			Format:         string(item.Format),
			OversLimit:     item.OversLimit,
			Status:         item.Status,
			CurrentInnings: item.CurrentInnings,
		},
		RecentBalls:    []BallView{},
		CurrentBatsmen: []BatterView{},
	}
	if state.InningsID == "" {
		return data
	}

	view := InningsView{
		ID:            state.InningsID,
		Number:        state.Number,
		BattingTeamID: state.BattingTeamID,
		BowlingTeamID: state.BowlingTeamID,
		Runs:          state.Runs,
		Wickets:       state.Wickets,
		Overs:         oversDisplay(state.LegalBalls),
		LegalBalls:    state.LegalBalls,
		Extras: ExtrasView{
			Wides:   state.Extras.Wides,
			NoBalls: state.Extras.NoBalls,
			Byes:    state.Extras.Byes,
			LegByes: state.Extras.LegByes,
			Total:   state.Extras.Total(),
		},
		Completed: state.Completed,
		Balls:     make([]BallView, 0, len(balls)),
		Batting:   make([]BatterView, 0, len(state.BattingOrder)),
		Bowling:   make([]BowlerView, 0, len(state.Bowling)),
	}

	for _, ball := range balls {
		view.Balls = append(view.Balls, ballView(ball))
	}
	for _, playerID := range state.BattingOrder {
		view.Batting = append(view.Batting, batterView(playerID, state))
	}
	for _, playerID := range bowlingOrder(state, balls) {
		view.Bowling = append(view.Bowling, bowlerView(playerID, state))
	}

	data.CurrentInnings = &view

	start := len(balls) - recentBallWindow
	if start < 0 {
		start = 0
	}
	for _, ball := range balls[start:] {
		data.RecentBalls = append(data.RecentBalls, ballView(ball))
	}

	if !state.Completed {
		if state.StrikerID != "" {
			data.CurrentBatsmen = append(data.CurrentBatsmen, batterView(state.StrikerID, state))
		}
		if state.NonStrikerID != "" {
			data.CurrentBatsmen = append(data.CurrentBatsmen, batterView(state.NonStrikerID, state))
		}
		if state.BowlerID != "" {
			bowler := bowlerView(state.BowlerID, state)
			data.CurrentBowler = &bowler
		}
	}
	return data
}

func ballView(ball innings.Ball) BallView {
	return BallView{
		ID:            ball.ID,
		Seq:           ball.Seq,
		Over:          ball.Over,
		BallInOver:    ball.BallInOver,
		BatsmanID:     ball.BatsmanID,
		BowlerID:      ball.BowlerID,
		RunsOffBat:    ball.RunsOffBat,
		ExtraType:     string(ball.ExtraType),
		ExtraRuns:     ball.ExtraRuns,
		WicketFell:    ball.WicketFell,
		WicketKind:    string(ball.WicketKind),
		DismissedID:   ball.DismissedID,
		ReplacementID: ball.ReplacementID,
		Commentary:    ball.Commentary,
	}
}

func batterView(playerID string, state innings.State) BatterView {
	fig := state.Batting[playerID]
	return BatterView{
		PlayerID:   playerID,
		Runs:       fig.Runs,
		BallsFaced: fig.BallsFaced,
		Fours:      fig.Fours,
		Sixes:      fig.Sixes,
		Out:        fig.Out,
		OnStrike:   playerID == state.StrikerID && !state.Completed,
	}
}

func bowlerView(playerID string, state innings.State) BowlerView {
	fig := state.Bowling[playerID]
	return BowlerView{
		PlayerID:     playerID,
		BallsBowled:  fig.BallsBowled,
		RunsConceded: fig.RunsConceded,
		Wickets:      fig.Wickets,
		Overs:        oversDisplay(fig.BallsBowled),
	}
}

// bowlingOrder lists bowlers by first appearance in the ball log, with the
// opening bowler first when no ball has been bowled yet.
func bowlingOrder(state innings.State, balls []innings.Ball) []string {
	seen := make(map[string]struct{}, len(state.Bowling))
	order := make([]string, 0, len(state.Bowling))

	add := func(playerID string) {
		if playerID == "" {
			return
		}
		if _, ok := seen[playerID]; ok {
			return
		}
		seen[playerID] = struct{}{}
		order = append(order, playerID)
	}

	add(state.OpeningBowlerID)
	for _, ball := range balls {
		add(ball.BowlerID)
	}
	add(state.BowlerID)
	return order
}

func oversDisplay(legalBalls int) string {
	return fmt.Sprintf("%d.%d", legalBalls/innings.BallsPerOver, legalBalls%innings.BallsPerOver)
}
