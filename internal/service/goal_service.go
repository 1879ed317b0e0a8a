package service

import (
	"context"
	"fmt"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/rs/zerolog/log"
)

type WeeklyGoalService interface {
	// List returns this week's goals, or every goal when allWeeks is set.
	List(ctx context.Context, userID uint, allWeeks bool) ([]dto.WeeklyGoalResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.WeeklyGoalResponse, error)
	Create(ctx context.Context, userID uint, in dto.WeeklyGoalInput) (*dto.WeeklyGoalResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.WeeklyGoalInput) (*dto.WeeklyGoalResponse, error)
	Delete(ctx context.Context, userID, id uint) error
	UpdateStatus(ctx context.Context, userID, id uint, status string) (*dto.WeeklyGoalResponse, error)
}

type weeklyGoalService struct {
	repo  repository.WeeklyGoalRepository
	clock Clock
}

func NewWeeklyGoalService(repo repository.WeeklyGoalRepository, clock Clock) WeeklyGoalService {
	return &weeklyGoalService{repo: repo, clock: clock}
}

func (s *weeklyGoalService) List(ctx context.Context, userID uint, allWeeks bool) ([]dto.WeeklyGoalResponse, error) {
	var (
		goals []model.WeeklyGoal
		err   error
	)
	if allWeeks {
		goals, err = s.repo.FindAll(ctx, userID)
	} else {
		goals, err = s.repo.FindByWeek(ctx, userID, WeekStart(today(s.clock)))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return toResponses[dto.WeeklyGoalResponse](goals)
}

func (s *weeklyGoalService) Get(ctx context.Context, userID, id uint) (*dto.WeeklyGoalResponse, error) {
	goal, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "goal", id)
	}
	return respond[dto.WeeklyGoalResponse](goal)
}

func (s *weeklyGoalService) Create(ctx context.Context, userID uint, in dto.WeeklyGoalInput) (*dto.WeeklyGoalResponse, error) {
	goal := model.WeeklyGoal{UserID: &userID, Status: model.StatusPending, WeekStart: WeekStart(today(s.clock))}
	if err := applyGoalInput(&goal, in); err != nil {
		return nil, err
	}
	if err := requireFields(field("text", goal.Text == "")); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return respond[dto.WeeklyGoalResponse](&goal)
}

func (s *weeklyGoalService) Update(ctx context.Context, userID, id uint, in dto.WeeklyGoalInput) (*dto.WeeklyGoalResponse, error) {
	goal, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "goal", id)
	}
	if err := applyGoalInput(goal, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal %d: %w", id, err)
	}
	return respond[dto.WeeklyGoalResponse](goal)
}

func (s *weeklyGoalService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "goal", id)
	}
	return nil
}

// UpdateStatus leaves the goal untouched when status is not allowed.
func (s *weeklyGoalService) UpdateStatus(ctx context.Context, userID, id uint, status string) (*dto.WeeklyGoalResponse, error) {
	goal, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "goal", id)
	}
	if !validStatus(status, model.StatusPending, model.StatusInProgress, model.StatusCompleted) {
		log.Warn().Uint("goalID", id).Str("status", status).Msg("Rejected goal status")
		return nil, invalid("Invalid status")
	}
	goal.Status = status
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal %d: %w", id, err)
	}
	return respond[dto.WeeklyGoalResponse](goal)
}

func applyGoalInput(goal *model.WeeklyGoal, in dto.WeeklyGoalInput) error {
	setString(&goal.Text, in.Text)
	setString(&goal.Status, in.Status)
	return setDate(&goal.WeekStart, "week_start", in.WeekStart)
}
