package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/domain/player"
	"github.com/riskibarqy/cricket-live/internal/domain/team"
	"github.com/riskibarqy/cricket-live/internal/platform/id"
)

type CreateMatchInput struct {
	TeamAID      string
	TeamBID      string
	TossWinnerID string
	TossDecision string
	Format       string
	OversLimit   int
}

type MatchService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      id.Generator
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen id.Generator,
) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	input.TeamAID = strings.TrimSpace(input.TeamAID)
	input.TeamBID = strings.TrimSpace(input.TeamBID)
	input.TossWinnerID = strings.TrimSpace(input.TossWinnerID)

	if input.TeamAID == "" || input.TeamBID == "" {
		return match.Match{}, fmt.Errorf("%w: team_a_id and team_b_id are required", ErrInvalidInput)
	}
	if input.TeamAID == input.TeamBID {
		return match.Match{}, fmt.Errorf("%w: a match needs two distinct teams", ErrInvalidInput)
	}

	format, ok := match.ParseFormat(input.Format)
	if !ok {
		return match.Match{}, fmt.Errorf("%w: unknown format %q", ErrInvalidInput, input.Format)
	}

	for _, teamID := range []string{input.TeamAID, input.TeamBID} {
		if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return match.Match{}, fmt.Errorf("get team %s: %w", teamID, err)
		} else if !exists {
			return match.Match{}, fmt.Errorf("%w: unknown team %q", ErrInvalidInput, teamID)
		}
	}

	if input.TossWinnerID != "" {
		if input.TossWinnerID != input.TeamAID && input.TossWinnerID != input.TeamBID {
			return match.Match{}, fmt.Errorf("%w: toss winner must be one of the two teams", ErrInvalidInput)
		}
		decision := strings.ToLower(strings.TrimSpace(input.TossDecision))
		if decision != match.TossDecisionBat && decision != match.TossDecisionBowl {
			return match.Match{}, fmt.Errorf("%w: toss decision must be bat or bowl", ErrInvalidInput)
		}
		input.TossDecision = decision
	}

	oversLimit := input.OversLimit
	if oversLimit <= 0 {
		oversLimit = match.DefaultOversLimit(format)
	}

	matchID, err := s.idGen.NewID("match")
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:           matchID,
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		TossWinnerID: input.TossWinnerID,
		TossDecision: input.TossDecision,
		Format:       format,
		OversLimit:   oversLimit,
		Status:       match.StatusSetup,
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %q", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// StartMatch moves a match out of setup so innings can begin.
func (s *MatchService) StartMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StartMatch")
	defer span.End()

	item, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status != match.StatusSetup {
		return match.Match{}, fmt.Errorf("%w: match %s is %s", ErrInvalidInput, item.ID, item.Status)
	}

	item.Status = match.StatusLive
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("start match: %w", err)
	}
	return item, nil
}

func (s *MatchService) ListTeams(ctx context.Context) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListTeamPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: team %q", ErrNotFound, teamID)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}
