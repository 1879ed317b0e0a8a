package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/metrics"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type QuizService interface {
	List(ctx context.Context, userID uint) ([]dto.QuizSummaryResponse, error)
	Upcoming(ctx context.Context, userID uint) ([]dto.QuizSummaryResponse, error)
	// NextUpcoming returns the soonest quiz dated today or later, or nil.
	NextUpcoming(ctx context.Context, userID uint) (*dto.QuizSummaryResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.QuizResponse, error)
	Create(ctx context.Context, userID uint, in dto.QuizInput) (*dto.QuizResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.QuizInput) (*dto.QuizResponse, error)
	Delete(ctx context.Context, userID, id uint) error
	Submit(ctx context.Context, userID, id uint, answers map[string]any) (*dto.QuizAttemptResponse, error)
	Attempts(ctx context.Context, userID, id uint) ([]dto.QuizAttemptResponse, error)
}

type quizService struct {
	repo  repository.QuizRepository
	clock Clock
}

func NewQuizService(repo repository.QuizRepository, clock Clock) QuizService {
	return &quizService{repo: repo, clock: clock}
}

func (s *quizService) List(ctx context.Context, userID uint) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return s.summaries(quizzes)
}

func (s *quizService) Upcoming(ctx context.Context, userID uint) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.repo.FindUpcoming(ctx, userID, today(s.clock), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming quizzes: %w", err)
	}
	return s.summaries(quizzes)
}

func (s *quizService) NextUpcoming(ctx context.Context, userID uint) (*dto.QuizSummaryResponse, error) {
	day := today(s.clock)
	quizzes, err := s.repo.FindUpcoming(ctx, userID, day, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to load next quiz: %w", err)
	}
	if len(quizzes) == 0 {
		return nil, nil
	}
	resp, err := quizSummary(&quizzes[0], day)
	return &resp, err
}

func (s *quizService) Get(ctx context.Context, userID, id uint) (*dto.QuizResponse, error) {
	quiz, err := s.repo.FindByIDWithQuestions(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "quiz", id)
	}
	return s.detail(quiz)
}

func (s *quizService) Create(ctx context.Context, userID uint, in dto.QuizInput) (*dto.QuizResponse, error) {
	quiz := model.Quiz{UserID: &userID, TimeLimit: model.DefaultTimeLimit}
	if err := applyQuizInput(&quiz, in); err != nil {
		return nil, err
	}
	if err := requireFields(
		field("title", quiz.Title == ""),
		field("subject", quiz.Subject == ""),
		field("topic", quiz.Topic == ""),
		field("quiz_date", quiz.QuizDate == ""),
	); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz")
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return s.detail(&quiz)
}

func (s *quizService) Update(ctx context.Context, userID, id uint, in dto.QuizInput) (*dto.QuizResponse, error) {
	quiz, err := s.repo.FindByIDWithQuestions(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "quiz", id)
	}
	if err := applyQuizInput(quiz, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz %d: %w", id, err)
	}
	return s.detail(quiz)
}

func (s *quizService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "quiz", id)
	}
	log.Info().Uint("quizID", id).Msg("Quiz deleted with its questions and attempts")
	return nil
}

// Submit grades answers against the quiz and stores the attempt. Unknown
// question ids, missing answers and non numeric choices simply score nothing.
func (s *quizService) Submit(ctx context.Context, userID, id uint, answers map[string]any) (*dto.QuizAttemptResponse, error) {
	quiz, err := s.repo.FindByIDWithQuestions(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "quiz", id)
	}
	if answers == nil {
		answers = map[string]any{}
	}

	attempt := model.QuizAttempt{
		QuizID:         quiz.ID,
		UserID:         &userID,
		Score:          gradeAnswers(quiz.Questions, answers),
		TotalQuestions: len(quiz.Questions),
		Answers:        datatypes.JSONMap(answers),
	}
	if err := s.repo.CreateAttempt(ctx, &attempt); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to save quiz attempt")
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	metrics.QuizSubmissions.Inc()
	log.Info().Uint("quizID", id).Int("score", attempt.Score).Int("total", attempt.TotalQuestions).Msg("Quiz graded")
	resp, err := toResponse[dto.QuizAttemptResponse](&attempt)
	return &resp, err
}

func (s *quizService) Attempts(ctx context.Context, userID, id uint) ([]dto.QuizAttemptResponse, error) {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		return nil, lookupErr(err, "quiz", id)
	}
	attempts, err := s.repo.FindAttempts(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts of quiz %d: %w", id, err)
	}
	return toResponses[dto.QuizAttemptResponse](attempts)
}

func (s *quizService) summaries(quizzes []model.Quiz) ([]dto.QuizSummaryResponse, error) {
	day := today(s.clock)
	out := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for i := range quizzes {
		resp, err := quizSummary(&quizzes[i], day)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *quizService) detail(quiz *model.Quiz) (*dto.QuizResponse, error) {
	resp, err := toResponse[dto.QuizResponse](quiz)
	if err != nil {
		return nil, err
	}
	resp.DaysUntil = quiz.QuizDate.DaysUntil(today(s.clock))
	if resp.Questions, err = toResponses[dto.QuizQuestionResponse](quiz.Questions); err != nil {
		return nil, err
	}
	return &resp, nil
}

func applyQuizInput(quiz *model.Quiz, in dto.QuizInput) error {
	setString(&quiz.Title, in.Title)
	setString(&quiz.Subject, in.Subject)
	setString(&quiz.Topic, in.Topic)
	if in.TimeLimit != nil {
		quiz.TimeLimit = *in.TimeLimit
	}
	return setDate(&quiz.QuizDate, "quiz_date", in.QuizDate)
}

func gradeAnswers(questions []model.QuizQuestion, answers map[string]any) int {
	score := 0
	for _, q := range questions {
		raw, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if !ok {
			continue
		}
		if choice, ok := optionIndex(raw); ok && choice == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// optionIndex reads a submitted choice given as a JSON number or a numeric string.
func optionIndex(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	}
	return 0, false
}
