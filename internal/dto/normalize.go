package dto

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin/binding"
)

// Normalizer rewrites a raw JSON object into its canonical key set.
type Normalizer func(raw map[string]any) map[string]any

// Aliases maps an accepted input key to its canonical snake_case key.
type Aliases map[string]string

// Normalize renames aliased keys. When both spellings are present the
// canonical one wins.
func (a Aliases) Normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		if _, aliased := a[key]; !aliased {
			out[key] = value
		}
	}
	for alias, canonical := range a {
		if _, ok := out[canonical]; ok {
			continue
		}
		if value, ok := raw[alias]; ok {
			out[canonical] = value
		}
	}
	return out
}

// Decode normalizes raw, decodes it into dst and runs the binding validator
// over the result.
func Decode(raw map[string]any, normalize Normalizer, dst any) error {
	if normalize != nil {
		raw = normalize(raw)
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid field type: %w", err)
	}
	return binding.Validator.ValidateStruct(dst)
}

var (
	ScheduleItemAliases = Aliases{"startTime": "start_time", "endTime": "end_time"}
	QuizAliases         = Aliases{"quizDate": "quiz_date", "timeLimit": "time_limit"}
	QuizQuestionAliases = Aliases{
		"quizId":        "quiz",
		"question":      "question_text",
		"correctAnswer": "correct_answer",
		"optionA":       "option_a",
		"optionB":       "option_b",
		"optionC":       "option_c",
		"optionD":       "option_d",
	}
	AssignmentAliases  = Aliases{"dueDate": "due_date"}
	WeeklyGoalAliases  = Aliases{"weekStart": "week_start"}
	ActivityAliases    = Aliases{"activityTime": "activity_time"}
	ExamAliases        = Aliases{"examDate": "exam_date"}
	PerformanceAliases = Aliases{}
)

var optionKeys = [...]string{"option_a", "option_b", "option_c", "option_d"}

// NormalizeQuizQuestion also expands an "options" list into the four
// option_a..option_d fields, unless those are given explicitly.
func NormalizeQuizQuestion(raw map[string]any) map[string]any {
	out := QuizQuestionAliases.Normalize(raw)
	options, ok := out["options"].([]any)
	delete(out, "options")
	if !ok {
		return out
	}
	for i, key := range optionKeys {
		if i >= len(options) {
			break
		}
		if _, set := out[key]; !set {
			out[key] = options[i]
		}
	}
	return out
}
