package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"gorm.io/gorm"
)

type SubjectPerformanceService interface {
	List(ctx context.Context, userID uint) ([]dto.SubjectPerformanceResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.SubjectPerformanceResponse, error)
	Create(ctx context.Context, userID uint, in dto.SubjectPerformanceInput) (*dto.SubjectPerformanceResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.SubjectPerformanceInput) (*dto.SubjectPerformanceResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type subjectPerformanceService struct {
	repo repository.SubjectPerformanceRepository
}

func NewSubjectPerformanceService(repo repository.SubjectPerformanceRepository) SubjectPerformanceService {
	return &subjectPerformanceService{repo: repo}
}

func (s *subjectPerformanceService) List(ctx context.Context, userID uint) ([]dto.SubjectPerformanceResponse, error) {
	rows, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance: %w", err)
	}
	return toResponses[dto.SubjectPerformanceResponse](rows)
}

func (s *subjectPerformanceService) Get(ctx context.Context, userID, id uint) (*dto.SubjectPerformanceResponse, error) {
	p, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "performance record", id)
	}
	return respond[dto.SubjectPerformanceResponse](p)
}

func (s *subjectPerformanceService) Create(ctx context.Context, userID uint, in dto.SubjectPerformanceInput) (*dto.SubjectPerformanceResponse, error) {
	p := model.SubjectPerformance{UserID: &userID}
	applyPerformanceInput(&p, in)
	if err := requireFields(
		field("subject", p.Subject == ""),
		field("grade", p.Grade == ""),
		field("percentage", in.Percentage == nil),
	); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, userID, &p); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, duplicateSubject(err, p.Subject)
	}
	return respond[dto.SubjectPerformanceResponse](&p)
}

func (s *subjectPerformanceService) Update(ctx context.Context, userID, id uint, in dto.SubjectPerformanceInput) (*dto.SubjectPerformanceResponse, error) {
	p, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "performance record", id)
	}
	applyPerformanceInput(p, in)
	if err := s.checkUnique(ctx, userID, p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, duplicateSubject(err, p.Subject)
	}
	return respond[dto.SubjectPerformanceResponse](p)
}

func (s *subjectPerformanceService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "performance record", id)
	}
	return nil
}

func (s *subjectPerformanceService) checkUnique(ctx context.Context, userID uint, p *model.SubjectPerformance) error {
	taken, err := s.repo.SubjectTaken(ctx, userID, p.Subject, p.ID)
	if err != nil {
		return fmt.Errorf("failed to check subject: %w", err)
	}
	if taken {
		return invalid("Performance for subject %q already exists", p.Subject)
	}
	return nil
}

// duplicateSubject covers the race between checkUnique and the write.
func duplicateSubject(err error, subject string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invalid("Performance for subject %q already exists", subject)
	}
	return fmt.Errorf("failed to save performance: %w", err)
}

func applyPerformanceInput(p *model.SubjectPerformance, in dto.SubjectPerformanceInput) {
	setString(&p.Subject, in.Subject)
	setString(&p.Grade, in.Grade)
	if in.Percentage != nil {
		p.Percentage = *in.Percentage
	}
}
