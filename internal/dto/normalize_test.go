package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasesAcceptEitherSpelling(t *testing.T) {
	for _, raw := range []map[string]any{
		{"startTime": "09:00", "endTime": "10:30", "subject": "Math"},
		{"start_time": "09:00", "end_time": "10:30", "subject": "Math"},
	} {
		var in ScheduleItemInput
		require.NoError(t, Decode(raw, ScheduleItemAliases.Normalize, &in))
		require.NotNil(t, in.StartTime)
		require.NotNil(t, in.EndTime)
		assert.Equal(t, "09:00", *in.StartTime)
		assert.Equal(t, "10:30", *in.EndTime)
		assert.Nil(t, in.Date)
	}
}

func TestAliasesCanonicalKeyWins(t *testing.T) {
	out := AssignmentAliases.Normalize(map[string]any{"dueDate": "2026-01-01", "due_date": "2026-02-02"})
	assert.Equal(t, map[string]any{"due_date": "2026-02-02"}, out)
}

func TestDecodeRejectsInvalidEnum(t *testing.T) {
	var in WeeklyGoalInput
	err := Decode(map[string]any{"status": "archived"}, WeeklyGoalAliases.Normalize, &in)
	assert.Error(t, err)
}

func TestDecodeRejectsBadDate(t *testing.T) {
	var in ExamInput
	err := Decode(map[string]any{"examDate": "next friday"}, ExamAliases.Normalize, &in)
	assert.Error(t, err)
}

func TestDecodeEmptyLinkIsAllowed(t *testing.T) {
	var in AssignmentInput
	require.NoError(t, Decode(map[string]any{"link": ""}, AssignmentAliases.Normalize, &in))
	require.NotNil(t, in.Link)
	assert.Equal(t, "", *in.Link)

	assert.Error(t, Decode(map[string]any{"link": "not a url"}, AssignmentAliases.Normalize, &AssignmentInput{}))
}

func TestNormalizeQuizQuestionExpandsOptions(t *testing.T) {
	raw := map[string]any{
		"quizId":        float64(4),
		"question":      "What is the derivative of x²?",
		"options":       []any{"x", "2x", "x²", "2"},
		"option_c":      "explicit",
		"correctAnswer": float64(1),
	}

	var in QuizQuestionInput
	require.NoError(t, Decode(raw, NormalizeQuizQuestion, &in))

	assert.Equal(t, uint(4), *in.Quiz)
	assert.Equal(t, "What is the derivative of x²?", *in.QuestionText)
	assert.Equal(t, "x", *in.OptionA)
	assert.Equal(t, "2x", *in.OptionB)
	assert.Equal(t, "explicit", *in.OptionC)
	assert.Equal(t, "2", *in.OptionD)
	assert.Equal(t, 1, *in.CorrectAnswer)
}

func TestDecodeCorrectAnswerRange(t *testing.T) {
	err := Decode(map[string]any{"correct_answer": float64(4)}, NormalizeQuizQuestion, &QuizQuestionInput{})
	assert.Error(t, err)
}
