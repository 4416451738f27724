package livehub

import "github.com/riskibarqy/cricket-live/internal/usecase"

const (
	clientTypeJoinMatch = "join_match"

	serverTypeSnapshot = "snapshot"
	serverTypeError    = "error"
)

type clientMessage struct {
	Type    string `json:"type"`
	MatchID string `json:"matchId"`
}

type serverMessage struct {
	Type    string                `json:"type"`
	MatchID string                `json:"matchId"`
	Data    usecase.LiveMatchData `json:"data"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
