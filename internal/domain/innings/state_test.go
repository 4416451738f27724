package innings

import "testing"

func TestStateOversFollowsBallsPerOver(t *testing.T) {
	s := State{LegalBalls: BallsPerOver*3 + 2}
	overs, balls := s.Overs()
	if overs != 3 || balls != 2 {
		t.Fatalf("expected 3.2 after %d legal balls, got %d.%d", s.LegalBalls, overs, balls)
	}
}
