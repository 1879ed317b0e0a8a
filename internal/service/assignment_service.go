package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
)

type AssignmentService interface {
	List(ctx context.Context, userID uint) ([]dto.AssignmentResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.AssignmentResponse, error)
	Create(ctx context.Context, userID uint, in dto.AssignmentInput) (*dto.AssignmentResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.AssignmentInput) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, userID, id uint) error
	MarkCompleted(ctx context.Context, userID, id uint) (*dto.AssignmentResponse, error)
	Stats(ctx context.Context, userID uint) (*dto.AssignmentStatsResponse, error)
}

type assignmentService struct {
	repo repository.AssignmentRepository
}

func NewAssignmentService(repo repository.AssignmentRepository) AssignmentService {
	return &assignmentService{repo: repo}
}

func (s *assignmentService) List(ctx context.Context, userID uint) ([]dto.AssignmentResponse, error) {
	rows, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return toResponses[dto.AssignmentResponse](rows)
}

func (s *assignmentService) Get(ctx context.Context, userID, id uint) (*dto.AssignmentResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	return respond[dto.AssignmentResponse](a)
}

func (s *assignmentService) Create(ctx context.Context, userID uint, in dto.AssignmentInput) (*dto.AssignmentResponse, error) {
	a := model.Assignment{UserID: &userID, Status: model.StatusPending}
	if err := applyAssignmentInput(&a, in); err != nil {
		return nil, err
	}
	if err := requireFields(
		field("title", a.Title == ""),
		field("subject", a.Subject == ""),
		field("due_date", a.DueDate == ""),
	); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return respond[dto.AssignmentResponse](&a)
}

func (s *assignmentService) Update(ctx context.Context, userID, id uint, in dto.AssignmentInput) (*dto.AssignmentResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	if err := applyAssignmentInput(a, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update assignment %d: %w", id, err)
	}
	return respond[dto.AssignmentResponse](a)
}

func (s *assignmentService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "assignment", id)
	}
	return nil
}

func (s *assignmentService) MarkCompleted(ctx context.Context, userID, id uint) (*dto.AssignmentResponse, error) {
	status := model.StatusCompleted
	return s.Update(ctx, userID, id, dto.AssignmentInput{Status: &status})
}

func (s *assignmentService) Stats(ctx context.Context, userID uint) (*dto.AssignmentStatsResponse, error) {
	completed, total, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	return &dto.AssignmentStatsResponse{Completed: completed, Total: total, Remaining: total - completed}, nil
}

func applyAssignmentInput(a *model.Assignment, in dto.AssignmentInput) error {
	setString(&a.Title, in.Title)
	setString(&a.Subject, in.Subject)
	setString(&a.Status, in.Status)
	setString(&a.Description, in.Description)
	if in.Link != nil {
		// An empty link is stored as NULL.
		if link := strings.TrimSpace(*in.Link); link != "" {
			a.Link = &link
		} else {
			a.Link = nil
		}
	}
	return setDate(&a.DueDate, "due_date", in.DueDate)
}
