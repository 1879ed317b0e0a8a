package model

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

const DefaultTimeLimit = 15

type Quiz struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    *uint          `json:"user_id,omitempty" gorm:"index"`
	User      *User          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title     string         `json:"title" gorm:"size:200;not null"`
	Subject   string         `json:"subject" gorm:"size:100;not null"`
	Topic     string         `json:"topic" gorm:"size:200;not null"`
	QuizDate  Date           `json:"quiz_date" gorm:"not null;index"`
	TimeLimit int            `json:"time_limit" gorm:"not null;default:15"` // minutes
	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Attempts  []QuizAttempt  `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type QuizQuestion struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	QuizID        uint   `json:"quiz_id" gorm:"not null;index"`
	QuestionText  string `json:"question_text" gorm:"type:text;not null"`
	OptionA       string `json:"option_a" gorm:"size:200;not null"`
	OptionB       string `json:"option_b" gorm:"size:200;not null"`
	OptionC       string `json:"option_c" gorm:"size:200;not null"`
	OptionD       string `json:"option_d" gorm:"size:200;not null"`
	CorrectAnswer int    `json:"correct_answer" gorm:"not null"` // 0..3 -> A..D
	Explanation   string `json:"explanation" gorm:"type:text"`
	Order         int    `json:"order" gorm:"column:sort_order;not null;default:0"`
}

// Options lists the four choices in A..D order.
func (q QuizQuestion) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

type QuizAttempt struct {
	ID             uint              `gorm:"primarykey" json:"id"`
	QuizID         uint              `json:"quiz_id" gorm:"not null;index"`
	UserID         *uint             `json:"user_id,omitempty" gorm:"index"`
	User           *User             `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Score          int               `json:"score" gorm:"not null"`
	TotalQuestions int               `json:"total_questions" gorm:"not null"`
	Answers        datatypes.JSONMap `json:"answers"`
	CompletedAt    time.Time         `json:"completed_at" gorm:"autoCreateTime"`
}

func (a QuizAttempt) Percentage() int {
	return Percentage(a.Score, a.TotalQuestions)
}

// Percentage is round(100*score/total) with halves rounded to even, 0 when
// there are no questions.
func Percentage(score, total int) int {
	if total <= 0 || score <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(score) / float64(total) * 100))
}
