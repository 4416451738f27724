package match

import "strings"

const (
	StatusSetup     = "setup"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

type Format string

const (
	FormatT20  Format = "T20"
	FormatODI  Format = "ODI"
	FormatTest Format = "TEST"
)

const (
	TossDecisionBat  = "bat"
	TossDecisionBowl = "bowl"
)

// Match describes one fixture between two teams. Team references are fixed at
// creation; status and CurrentInnings are mutated only by the session manager.
type Match struct {
	ID             string
	TeamAID        string
	TeamBID        string
	TossWinnerID   string
	TossDecision   string
	Format         Format
	OversLimit     int
	Status         string
	CurrentInnings int
}

// DefaultOversLimit returns the legal-overs bound for a format. Zero means
// unlimited (first-class play is bounded by wickets, not overs).
func DefaultOversLimit(format Format) int {
	switch format {
	case FormatT20:
		return 20
	case FormatODI:
		return 50
	default:
		return 0
	}
}

func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToUpper(strings.TrimSpace(value))) {
	case FormatT20:
		return FormatT20, true
	case FormatODI:
		return FormatODI, true
	case FormatTest:
		return FormatTest, true
	default:
		return "", false
	}
}

func IsLiveStatus(status string) bool {
	return strings.ToLower(strings.TrimSpace(status)) == StatusLive
}
