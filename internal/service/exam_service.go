package service

import (
	"context"
	"fmt"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
)

type ExamService interface {
	List(ctx context.Context, userID uint) ([]dto.ExamResponse, error)
	Upcoming(ctx context.Context, userID uint) ([]dto.ExamResponse, error)
	NextUpcoming(ctx context.Context, userID uint) (*dto.ExamResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.ExamResponse, error)
	Create(ctx context.Context, userID uint, in dto.ExamInput) (*dto.ExamResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.ExamInput) (*dto.ExamResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type examService struct {
	repo  repository.ExamRepository
	clock Clock
}

func NewExamService(repo repository.ExamRepository, clock Clock) ExamService {
	return &examService{repo: repo, clock: clock}
}

func (s *examService) List(ctx context.Context, userID uint) ([]dto.ExamResponse, error) {
	exams, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	return s.responses(exams)
}

func (s *examService) Upcoming(ctx context.Context, userID uint) ([]dto.ExamResponse, error) {
	exams, err := s.repo.FindUpcoming(ctx, userID, today(s.clock), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming exams: %w", err)
	}
	return s.responses(exams)
}

func (s *examService) NextUpcoming(ctx context.Context, userID uint) (*dto.ExamResponse, error) {
	exams, err := s.repo.FindUpcoming(ctx, userID, today(s.clock), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to load next exam: %w", err)
	}
	if len(exams) == 0 {
		return nil, nil
	}
	return s.respond(&exams[0])
}

func (s *examService) Get(ctx context.Context, userID, id uint) (*dto.ExamResponse, error) {
	exam, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "exam", id)
	}
	return s.respond(exam)
}

func (s *examService) Create(ctx context.Context, userID uint, in dto.ExamInput) (*dto.ExamResponse, error) {
	exam := model.Exam{UserID: &userID}
	if err := applyExamInput(&exam, in); err != nil {
		return nil, err
	}
	if err := requireFields(
		field("title", exam.Title == ""),
		field("subject", exam.Subject == ""),
		field("exam_date", exam.ExamDate == ""),
	); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &exam); err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}
	return s.respond(&exam)
}

func (s *examService) Update(ctx context.Context, userID, id uint, in dto.ExamInput) (*dto.ExamResponse, error) {
	exam, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "exam", id)
	}
	if err := applyExamInput(exam, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, fmt.Errorf("failed to update exam %d: %w", id, err)
	}
	return s.respond(exam)
}

func (s *examService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "exam", id)
	}
	return nil
}

func (s *examService) respond(exam *model.Exam) (*dto.ExamResponse, error) {
	resp, err := examResponse(exam, today(s.clock))
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *examService) responses(exams []model.Exam) ([]dto.ExamResponse, error) {
	day := today(s.clock)
	out := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		resp, err := examResponse(&exams[i], day)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func applyExamInput(exam *model.Exam, in dto.ExamInput) error {
	setString(&exam.Title, in.Title)
	setString(&exam.Subject, in.Subject)
	return setDate(&exam.ExamDate, "exam_date", in.ExamDate)
}
