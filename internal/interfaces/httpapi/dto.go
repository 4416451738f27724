package httpapi

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/domain/player"
	"github.com/riskibarqy/cricket-live/internal/domain/team"
)

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	BattingOrder int    `json:"battingOrder"`
}

type matchDTO struct {
	ID             string `json:"id"`
	TeamAID        string `json:"teamAId"`
	TeamBID        string `json:"teamBId"`
	TossWinnerID   string `json:"tossWinnerId,omitempty"`
	TossDecision   string `json:"tossDecision,omitempty"`
	Format         string `json:"format"`
	OversLimit     int    `json:"oversLimit"`
	Status         string `json:"status"`
	CurrentInnings int    `json:"currentInnings"`
}

type extrasDTO struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"noBalls"`
	Byes    int `json:"byes"`
	LegByes int `json:"legByes"`
	Total   int `json:"total"`
}

type batterStatsDTO struct {
	PlayerID   string `json:"playerId"`
	Runs       int    `json:"runs"`
	BallsFaced int    `json:"ballsFaced"`
	Fours      int    `json:"fours"`
	Sixes      int    `json:"sixes"`
	Out        bool   `json:"out"`
	OnStrike   bool   `json:"onStrike"`
}

type bowlerStatsDTO struct {
	PlayerID     string `json:"playerId"`
	BallsBowled  int    `json:"ballsBowled"`
	RunsConceded int    `json:"runsConceded"`
	Wickets      int    `json:"wickets"`
}

type inningsStateDTO struct {
	InningsID     string           `json:"inningsId"`
	MatchID       string           `json:"matchId"`
	Number        int              `json:"number"`
	BattingTeamID string           `json:"battingTeamId"`
	BowlingTeamID string           `json:"bowlingTeamId"`
	Runs          int              `json:"runs"`
	Wickets       int              `json:"wickets"`
	Overs         string           `json:"overs"`
	LegalBalls    int              `json:"legalBalls"`
	Extras        extrasDTO        `json:"extras"`
	StrikerID     string           `json:"strikerId"`
	NonStrikerID  string           `json:"nonStrikerId"`
	BowlerID      string           `json:"bowlerId"`
	Completed     bool             `json:"completed"`
	Batting       []batterStatsDTO `json:"batting"`
	Bowling       []bowlerStatsDTO `json:"bowling"`
}

type ballDTO struct {
	ID            string `json:"id"`
	InningsID     string `json:"inningsId"`
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

func oversString(overs, ballsInto int) string {
	return fmt.Sprintf("%d.%d", overs, ballsInto)
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		LogoURL:   item.LogoURL,
	}
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:           item.ID,
		TeamID:       item.TeamID,
		Name:         item.Name,
		Role:         string(item.Role),
		BattingOrder: item.BattingOrder,
	}
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:             item.ID,
		TeamAID:        item.TeamAID,
		TeamBID:        item.TeamBID,
		TossWinnerID:   item.TossWinnerID,
		TossDecision:   item.TossDecision,
		Format:         string(item.Format),
		OversLimit:     item.OversLimit,
		Status:         item.Status,
		CurrentInnings: item.CurrentInnings,
	}
}

func stateToDTO(state innings.State) inningsStateDTO {
	overs, ballsInto := state.Overs()

	dto := inningsStateDTO{
		InningsID:     state.InningsID,
		MatchID:       state.MatchID,
		Number:        state.Number,
		BattingTeamID: state.BattingTeamID,
		BowlingTeamID: state.BowlingTeamID,
		Runs:          state.Runs,
		Wickets:       state.Wickets,
		Overs:         oversString(overs, ballsInto),
		LegalBalls:    state.LegalBalls,
		Extras: extrasDTO{
			Wides:   state.Extras.Wides,
			NoBalls: state.Extras.NoBalls,
			Byes:    state.Extras.Byes,
			LegByes: state.Extras.LegByes,
			Total:   state.Extras.Total(),
		},
		StrikerID:    state.StrikerID,
		NonStrikerID: state.NonStrikerID,
		BowlerID:     state.BowlerID,
		Completed:    state.Completed,
		Batting:      make([]batterStatsDTO, 0, len(state.BattingOrder)),
		Bowling:      make([]bowlerStatsDTO, 0, len(state.Bowling)),
	}

	for _, playerID := range state.BattingOrder {
		fig := state.Batting[playerID]
		dto.Batting = append(dto.Batting, batterStatsDTO{
			PlayerID:   playerID,
			Runs:       fig.Runs,
			BallsFaced: fig.BallsFaced,
			Fours:      fig.Fours,
			Sixes:      fig.Sixes,
			Out:        fig.Out,
			OnStrike:   playerID == state.StrikerID && !state.Completed,
		})
	}

	bowlerIDs := make([]string, 0, len(state.Bowling))
	for playerID := range state.Bowling {
		bowlerIDs = append(bowlerIDs, playerID)
	}
	sort.Strings(bowlerIDs)
	for _, playerID := range bowlerIDs {
		fig := state.Bowling[playerID]
		dto.Bowling = append(dto.Bowling, bowlerStatsDTO{
			PlayerID:     playerID,
			BallsBowled:  fig.BallsBowled,
			RunsConceded: fig.RunsConceded,
			Wickets:      fig.Wickets,
		})
	}

	return dto
}

func ballToDTO(ball innings.Ball) ballDTO {
	return ballDTO{
		ID:            ball.ID,
		InningsID:     ball.InningsID,
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
