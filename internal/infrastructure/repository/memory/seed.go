package memory

import (
	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/domain/player"
	"github.com/riskibarqy/cricket-live/internal/domain/team"
)

const (
	TeamIDIndia     = "ind"
	TeamIDAustralia = "aus"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDIndia, Name: "India", ShortName: "IND"},
		{ID: TeamIDAustralia, Name: "Australia", ShortName: "AUS"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ind-bat-01", TeamID: TeamIDIndia, Name: "Ishan Rawal", Role: player.RoleBatsman, BattingOrder: 1},
		{ID: "ind-bat-02", TeamID: TeamIDIndia, Name: "Devansh Mehra", Role: player.RoleBatsman, BattingOrder: 2},
		{ID: "ind-bat-03", TeamID: TeamIDIndia, Name: "Arjun Sehgal", Role: player.RoleBatsman, BattingOrder: 3},
		{ID: "ind-wk-01", TeamID: TeamIDIndia, Name: "Kunal Bhave", Role: player.RoleWicketkeeper, BattingOrder: 4},
		{ID: "ind-all-01", TeamID: TeamIDIndia, Name: "Ronit Deshpande", Role: player.RoleAllrounder, BattingOrder: 5},
		{ID: "ind-all-02", TeamID: TeamIDIndia, Name: "Harshal Naik", Role: player.RoleAllrounder, BattingOrder: 6},
		{ID: "ind-bwl-01", TeamID: TeamIDIndia, Name: "Zubin Kotak", Role: player.RoleBowler, BattingOrder: 7},
		{ID: "ind-bwl-02", TeamID: TeamIDIndia, Name: "Pranav Iyer", Role: player.RoleBowler, BattingOrder: 8},
		{ID: "ind-bwl-03", TeamID: TeamIDIndia, Name: "Sameer Kale", Role: player.RoleBowler, BattingOrder: 9},
		{ID: "ind-bwl-04", TeamID: TeamIDIndia, Name: "Tejas Rao", Role: player.RoleBowler, BattingOrder: 10},
		{ID: "ind-bwl-05", TeamID: TeamIDIndia, Name: "Nikhil Menon", Role: player.RoleBowler, BattingOrder: 11},
		{ID: "aus-bat-01", TeamID: TeamIDAustralia, Name: "Lachlan Reeves", Role: player.RoleBatsman, BattingOrder: 1},
		{ID: "aus-bat-02", TeamID: TeamIDAustralia, Name: "Toby Ashworth", Role: player.RoleBatsman, BattingOrder: 2},
		{ID: "aus-bat-03", TeamID: TeamIDAustralia, Name: "Callum Brice", Role: player.RoleBatsman, BattingOrder: 3},
		{ID: "aus-wk-01", TeamID: TeamIDAustralia, Name: "Jarrod Lindsay", Role: player.RoleWicketkeeper, BattingOrder: 4},
		{ID: "aus-all-01", TeamID: TeamIDAustralia, Name: "Mitchell Duffy", Role: player.RoleAllrounder, BattingOrder: 5},
		{ID: "aus-all-02", TeamID: TeamIDAustralia, Name: "Hugh Paterson", Role: player.RoleAllrounder, BattingOrder: 6},
		{ID: "aus-bwl-01", TeamID: TeamIDAustralia, Name: "Declan Moriarty", Role: player.RoleBowler, BattingOrder: 7},
		{ID: "aus-bwl-02", TeamID: TeamIDAustralia, Name: "Riley Chandler", Role: player.RoleBowler, BattingOrder: 8},
		{ID: "aus-bwl-03", TeamID: TeamIDAustralia, Name: "Angus Whitfield", Role: player.RoleBowler, BattingOrder: 9},
		{ID: "aus-bwl-04", TeamID: TeamIDAustralia, Name: "Seb Harmon", Role: player.RoleBowler, BattingOrder: 10},
		{ID: "aus-bwl-05", TeamID: TeamIDAustralia, Name: "Flynn Gallagher", Role: player.RoleBowler, BattingOrder: 11},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:           "match_ind_aus_t20_01",
			TeamAID:      TeamIDIndia,
			TeamBID:      TeamIDAustralia,
			TossWinnerID: TeamIDIndia,
			TossDecision: match.TossDecisionBat,
			Format:       match.FormatT20,
			OversLimit:   match.DefaultOversLimit(match.FormatT20),
			Status:       match.StatusSetup,
		},
	}
}
