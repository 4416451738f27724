package team

// Team represents one side of a match. Immutable once a match references it.
type Team struct {
	ID        string
	Name      string
	ShortName string
	LogoURL   string
}
