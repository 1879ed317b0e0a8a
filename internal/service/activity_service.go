package service

import (
	"context"
	"fmt"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
)

const RecentActivityLimit = 10

type StudyActivityService interface {
	// List returns the newest activities first, at most limit when limit > 0.
	List(ctx context.Context, userID uint, limit int) ([]dto.StudyActivityResponse, error)
	Recent(ctx context.Context, userID uint) ([]dto.StudyActivityResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.StudyActivityResponse, error)
	Create(ctx context.Context, userID uint, in dto.StudyActivityInput) (*dto.StudyActivityResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.StudyActivityInput) (*dto.StudyActivityResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type studyActivityService struct {
	repo  repository.StudyActivityRepository
	clock Clock
}

func NewStudyActivityService(repo repository.StudyActivityRepository, clock Clock) StudyActivityService {
	return &studyActivityService{repo: repo, clock: clock}
}

func (s *studyActivityService) List(ctx context.Context, userID uint, limit int) ([]dto.StudyActivityResponse, error) {
	rows, err := s.repo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return toResponses[dto.StudyActivityResponse](rows)
}

func (s *studyActivityService) Recent(ctx context.Context, userID uint) ([]dto.StudyActivityResponse, error) {
	return s.List(ctx, userID, RecentActivityLimit)
}

func (s *studyActivityService) Get(ctx context.Context, userID, id uint) (*dto.StudyActivityResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "activity", id)
	}
	return respond[dto.StudyActivityResponse](a)
}

func (s *studyActivityService) Create(ctx context.Context, userID uint, in dto.StudyActivityInput) (*dto.StudyActivityResponse, error) {
	a := model.StudyActivity{UserID: &userID, ActivityTime: s.clock.Now()}
	if err := s.apply(&a, in); err != nil {
		return nil, err
	}
	if err := requireFields(field("text", a.Text == "")); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return respond[dto.StudyActivityResponse](&a)
}

func (s *studyActivityService) Update(ctx context.Context, userID, id uint, in dto.StudyActivityInput) (*dto.StudyActivityResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "activity", id)
	}
	if err := s.apply(a, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update activity %d: %w", id, err)
	}
	return respond[dto.StudyActivityResponse](a)
}

func (s *studyActivityService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "activity", id)
	}
	return nil
}

func (s *studyActivityService) apply(a *model.StudyActivity, in dto.StudyActivityInput) error {
	setString(&a.Text, in.Text)
	if in.ActivityTime != nil {
		t, err := parseTimestamp(*in.ActivityTime, s.clock.Now().Location())
		if err != nil {
			return err
		}
		a.ActivityTime = t
	}
	return nil
}
