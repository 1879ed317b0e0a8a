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

// QuizQuestionService manages questions of quizzes owned by the caller.
type QuizQuestionService interface {
	List(ctx context.Context, userID uint, quizID *uint) ([]dto.QuizQuestionResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.QuizQuestionResponse, error)
	Create(ctx context.Context, userID uint, in dto.QuizQuestionInput) (*dto.QuizQuestionResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.QuizQuestionInput) (*dto.QuizQuestionResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type quizQuestionService struct {
	repo     repository.QuizQuestionRepository
	quizRepo repository.QuizRepository
}

func NewQuizQuestionService(repo repository.QuizQuestionRepository, quizRepo repository.QuizRepository) QuizQuestionService {
	return &quizQuestionService{repo: repo, quizRepo: quizRepo}
}

func (s *quizQuestionService) List(ctx context.Context, userID uint, quizID *uint) ([]dto.QuizQuestionResponse, error) {
	questions, err := s.repo.FindAll(ctx, userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toResponses[dto.QuizQuestionResponse](questions)
}

func (s *quizQuestionService) Get(ctx context.Context, userID, id uint) (*dto.QuizQuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "question", id)
	}
	return respondQuestion(question)
}

func (s *quizQuestionService) Create(ctx context.Context, userID uint, in dto.QuizQuestionInput) (*dto.QuizQuestionResponse, error) {
	if in.Quiz == nil {
		return nil, invalid("Missing required fields: quiz")
	}
	if err := s.checkQuiz(ctx, userID, *in.Quiz); err != nil {
		return nil, err
	}

	question := model.QuizQuestion{QuizID: *in.Quiz}
	applyQuestionInput(&question, in)
	if err := requireFields(
		field("question_text", question.QuestionText == ""),
		field("option_a", question.OptionA == ""),
		field("option_b", question.OptionB == ""),
		field("option_c", question.OptionC == ""),
		field("option_d", question.OptionD == ""),
		field("correct_answer", in.CorrectAnswer == nil),
	); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return respondQuestion(&question)
}

func (s *quizQuestionService) Update(ctx context.Context, userID, id uint, in dto.QuizQuestionInput) (*dto.QuizQuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "question", id)
	}
	if in.Quiz != nil && *in.Quiz != question.QuizID {
		if err := s.checkQuiz(ctx, userID, *in.Quiz); err != nil {
			return nil, err
		}
		question.QuizID = *in.Quiz
	}
	applyQuestionInput(question, in)
	if err := s.repo.Update(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update question %d: %w", id, err)
	}
	return respondQuestion(question)
}

func (s *quizQuestionService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "question", id)
	}
	return nil
}

// checkQuiz rejects quiz ids outside the caller's own quizzes.
func (s *quizQuestionService) checkQuiz(ctx context.Context, userID, quizID uint) error {
	_, err := s.quizRepo.FindByID(ctx, userID, quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("quiz %d does not exist", quizID)
	}
	if err != nil {
		return fmt.Errorf("failed to load quiz %d: %w", quizID, err)
	}
	return nil
}

func respondQuestion(q *model.QuizQuestion) (*dto.QuizQuestionResponse, error) {
	resp, err := toResponse[dto.QuizQuestionResponse](q)
	return &resp, err
}

func applyQuestionInput(q *model.QuizQuestion, in dto.QuizQuestionInput) {
	setString(&q.QuestionText, in.QuestionText)
	setString(&q.OptionA, in.OptionA)
	setString(&q.OptionB, in.OptionB)
	setString(&q.OptionC, in.OptionC)
	setString(&q.OptionD, in.OptionD)
	setString(&q.Explanation, in.Explanation)
	if in.CorrectAnswer != nil {
		q.CorrectAnswer = *in.CorrectAnswer
	}
	if in.Order != nil {
		q.Order = *in.Order
	}
}
