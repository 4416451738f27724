package player

import "strings"

type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllrounder   Role = "allrounder"
	RoleWicketkeeper Role = "wicketkeeper"
)

// Player belongs to exactly one team.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Role         Role
	BattingOrder int
}

func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleBatsman:
		return RoleBatsman, true
	case RoleBowler:
		return RoleBowler, true
	case RoleAllrounder:
		return RoleAllrounder, true
	case RoleWicketkeeper:
		return RoleWicketkeeper, true
	default:
		return "", false
	}
}
