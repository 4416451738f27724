package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/cricket-live/internal/mocks/domain/match"
	"github.com/riskibarqy/cricket-live/internal/platform/id"
)

func TestMatchService_StartMatch_PersistsLiveStatusUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	service := NewMatchService(matchRepo, teamRepo, playerRepo, id.NewRandomGenerator())

	stored := match.Match{
		ID:      "match-1",
		TeamAID: memory.TeamIDIndia,
		TeamBID: memory.TeamIDAustralia,
		Format:  match.FormatT20,
		Status:  match.StatusSetup,
	}

	matchRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "match-1").
		Return(stored, true, nil).
		Once()
	matchRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(item match.Match) bool {
			return item.ID == "match-1" && item.Status == match.StatusLive
		})).
		Return(nil).
		Once()

	got, err := service.StartMatch(ctx, "match-1")
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if got.Status != match.StatusLive {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestMatchService_StartMatch_RepoFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	service := NewMatchService(matchRepo, teamRepo, playerRepo, id.NewRandomGenerator())

	repoErr := errors.New("connection reset")
	matchRepo.
		On("GetByID", mock.Anything, "match-1").
		Return(match.Match{}, false, repoErr).
		Once()

	_, err := service.StartMatch(ctx, "match-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
