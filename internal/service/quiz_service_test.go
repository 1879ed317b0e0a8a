package service

import (
	"errors"
	"strconv"
	"testing"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createQuizWithQuestions(t *testing.T, f *fixture, owner uint, correct []int) *dto.QuizResponse {
	t.Helper()
	quiz, err := f.quizzes.Create(f.ctx, owner, dto.QuizInput{
		Title:    ptr("Mathematics Quiz"),
		Subject:  ptr("Mathematics"),
		Topic:    ptr("Derivatives"),
		QuizDate: ptr("2026-10-23"),
	})
	require.NoError(t, err)

	for i, answer := range correct {
		_, err := f.questions.Create(f.ctx, owner, dto.QuizQuestionInput{
			Quiz:          &quiz.ID,
			QuestionText:  ptr("Question " + strconv.Itoa(i)),
			OptionA:       ptr("a"),
			OptionB:       ptr("b"),
			OptionC:       ptr("c"),
			OptionD:       ptr("d"),
			CorrectAnswer: ptr(answer),
			Order:         ptr(i),
		})
		require.NoError(t, err)
	}

	quiz, err = f.quizzes.Get(f.ctx, owner, quiz.ID)
	require.NoError(t, err)
	return quiz
}

func TestQuizCreateDefaults(t *testing.T) {
	f := newFixture(t)

	quiz, err := f.quizzes.Create(f.ctx, f.alice, dto.QuizInput{
		Title: ptr("Physics"), Subject: ptr("Physics"), Topic: ptr("Forces"), QuizDate: ptr("2026-10-25"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultTimeLimit, quiz.TimeLimit)
	assert.Equal(t, 4, quiz.DaysUntil)
	assert.Equal(t, "2026-10-25", quiz.QuizDate)
	assert.NotNil(t, quiz.Questions)
	assert.Empty(t, quiz.Questions)
}

func TestQuizCreateRequiresFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.quizzes.Create(f.ctx, f.alice, dto.QuizInput{Title: ptr("Only a title")})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Message, "quiz_date")
}

func TestQuizSubmitScoresCorrectAnswers(t *testing.T) {
	f := newFixture(t)
	quiz := createQuizWithQuestions(t, f, f.alice, []int{1, 0, 0, 0, 2})
	require.Len(t, quiz.Questions, 5)

	q := quiz.Questions
	answers := map[string]any{
		strconv.Itoa(int(q[0].ID)): float64(1),
		strconv.Itoa(int(q[1].ID)): "0",
		strconv.Itoa(int(q[2].ID)): float64(0),
		strconv.Itoa(int(q[3].ID)): float64(3),
		"99999":                    float64(0),
	}

	attempt, err := f.quizzes.Submit(f.ctx, f.alice, quiz.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, 3, attempt.Score)
	assert.Equal(t, 5, attempt.TotalQuestions)
	assert.Equal(t, 60, attempt.Percentage)
	assert.Equal(t, quiz.ID, attempt.QuizID)
	assert.Len(t, attempt.Answers, 5)

	history, err := f.quizzes.Attempts(f.ctx, f.alice, quiz.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 60, history[0].Percentage)
}

func TestQuizSubmitWithoutQuestions(t *testing.T) {
	f := newFixture(t)
	quiz := createQuizWithQuestions(t, f, f.alice, nil)

	attempt, err := f.quizzes.Submit(f.ctx, f.alice, quiz.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.TotalQuestions)
	assert.Equal(t, 0, attempt.Percentage)
}

func TestQuizSubmitOtherUsersQuiz(t *testing.T) {
	f := newFixture(t)
	quiz := createQuizWithQuestions(t, f, f.alice, []int{0})

	_, err := f.quizzes.Submit(f.ctx, f.bob, quiz.ID, map[string]any{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizQuestionsOrderedAndProjected(t *testing.T) {
	f := newFixture(t)
	quiz := createQuizWithQuestions(t, f, f.alice, []int{2, 1})

	require.Len(t, quiz.Questions, 2)
	first := quiz.Questions[0]
	assert.Equal(t, "Question 0", first.QuestionText)
	assert.Equal(t, []string{"a", "b", "c", "d"}, first.Options)
	assert.Equal(t, 2, first.CorrectAnswer)
	assert.Equal(t, quiz.ID, first.QuizID)

	listed, err := f.questions.List(f.ctx, f.alice, &quiz.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	hidden, err := f.questions.List(f.ctx, f.bob, nil)
	require.NoError(t, err)
	assert.Empty(t, hidden)
}

func TestQuizQuestionRejectsForeignQuiz(t *testing.T) {
	f := newFixture(t)
	quiz := createQuizWithQuestions(t, f, f.alice, nil)

	_, err := f.questions.Create(f.ctx, f.bob, dto.QuizQuestionInput{
		Quiz: &quiz.ID, QuestionText: ptr("q"), OptionA: ptr("a"), OptionB: ptr("b"),
		OptionC: ptr("c"), OptionD: ptr("d"), CorrectAnswer: ptr(0),
	})

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestQuizDeleteCascades(t *testing.T) {
	f := newFixture(t)
	quiz := createQuizWithQuestions(t, f, f.alice, []int{0, 1})
	_, err := f.quizzes.Submit(f.ctx, f.alice, quiz.ID, map[string]any{})
	require.NoError(t, err)

	require.NoError(t, f.quizzes.Delete(f.ctx, f.alice, quiz.ID))

	var questions, attempts int64
	require.NoError(t, f.db.Model(&model.QuizQuestion{}).Count(&questions).Error)
	require.NoError(t, f.db.Model(&model.QuizAttempt{}).Count(&attempts).Error)
	assert.Zero(t, questions)
	assert.Zero(t, attempts)

	assert.ErrorIs(t, f.quizzes.Delete(f.ctx, f.alice, quiz.ID), ErrNotFound)
}

func TestQuizUpcomingSkipsPast(t *testing.T) {
	f := newFixture(t)
	for _, date := range []string{"2026-10-20", "2026-10-21", "2026-10-30"} {
		_, err := f.quizzes.Create(f.ctx, f.alice, dto.QuizInput{
			Title: ptr("Quiz " + date), Subject: ptr("S"), Topic: ptr("T"), QuizDate: ptr(date),
		})
		require.NoError(t, err)
	}

	upcoming, err := f.quizzes.Upcoming(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "2026-10-21", upcoming[0].QuizDate)
	assert.Equal(t, 0, upcoming[0].DaysUntil)
	assert.Equal(t, 9, upcoming[1].DaysUntil)

	all, err := f.quizzes.List(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 0, all[0].DaysUntil)

	next, err := f.quizzes.NextUpcoming(f.ctx, f.alice)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "Quiz 2026-10-21", next.Title)
}

func TestOptionIndex(t *testing.T) {
	n, ok := optionIndex(float64(2))
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = optionIndex(" 3 ")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = optionIndex("B")
	assert.False(t, ok)
	_, ok = optionIndex(nil)
	assert.False(t, ok)
	_, ok = optionIndex([]any{1})
	assert.False(t, ok)
}
