package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedService fills an empty account with demo data.
type SeedService interface {
	SeedIfEmpty(ctx context.Context, userID uint) (bool, error)
}

type seedService struct {
	db    *gorm.DB
	clock Clock
}

func NewSeedService(db *gorm.DB, clock Clock) SeedService {
	return &seedService{db: db, clock: clock}
}

// SeedIfEmpty does nothing when the user already has schedule items or quizzes.
func (s *seedService) SeedIfEmpty(ctx context.Context, userID uint) (bool, error) {
	seeded := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var schedule, quizzes int64
		if err := tx.Model(&model.ScheduleItem{}).Scopes(repository.OwnedBy(userID)).Count(&schedule).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Quiz{}).Scopes(repository.OwnedBy(userID)).Count(&quizzes).Error; err != nil {
			return err
		}
		if schedule > 0 || quizzes > 0 {
			return nil
		}

		for _, rows := range s.demoData(userID) {
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed demo data: %w", err)
	}
	if seeded {
		log.Info().Uint("userID", userID).Msg("Database seeded with demo data")
	} else {
		log.Info().Uint("userID", userID).Msg("Account already has data, skipping seed")
	}
	return seeded, nil
}

func (s *seedService) demoData(userID uint) []any {
	owner := &userID
	current := s.clock.Now()
	day := model.DateOf(current)
	week := WeekStart(day)

	schedule := []model.ScheduleItem{
		{UserID: owner, Date: day, StartTime: "09:00:00", EndTime: "10:30:00", Subject: "Mathematics - Calculus II", Status: model.StatusUpcoming},
		{UserID: owner, Date: day, StartTime: "11:00:00", EndTime: "12:30:00", Subject: "Computer Science - Data Structures", Status: model.StatusUpcoming},
		{UserID: owner, Date: day, StartTime: "14:00:00", EndTime: "15:30:00", Subject: "Physics - Mechanics", Status: model.StatusUpcoming},
	}

	quiz := &model.Quiz{
		UserID:    owner,
		Title:     "Mathematics Quiz",
		Subject:   "Mathematics",
		Topic:     "Derivatives",
		QuizDate:  day.AddDays(2),
		TimeLimit: model.DefaultTimeLimit,
		Questions: []model.QuizQuestion{
			{QuestionText: "What is the derivative of x²?", OptionA: "x", OptionB: "2x", OptionC: "x²", OptionD: "2",
				CorrectAnswer: 1, Explanation: "Using the power rule: d/dx(x²) = 2x¹ = 2x", Order: 0},
			{QuestionText: "What is the derivative of sin(x)?", OptionA: "cos(x)", OptionB: "-cos(x)", OptionC: "sin(x)", OptionD: "-sin(x)",
				CorrectAnswer: 0, Explanation: "The derivative of sin(x) is cos(x)", Order: 1},
			{QuestionText: "What is the derivative of e^x?", OptionA: "e^x", OptionB: "xe^(x-1)", OptionC: "ln(x)", OptionD: "1/x",
				CorrectAnswer: 0, Explanation: "The derivative of e^x is e^x itself", Order: 2},
			{QuestionText: "Using the chain rule, what is the derivative of (2x + 1)³?", OptionA: "6(2x + 1)²", OptionB: "3(2x + 1)²", OptionC: "(2x + 1)²", OptionD: "6(2x + 1)",
				CorrectAnswer: 0, Explanation: "Using chain rule: d/dx[(2x + 1)³] = 3(2x + 1)² × 2 = 6(2x + 1)²", Order: 3},
			{QuestionText: "What is the derivative of ln(x)?", OptionA: "1/x", OptionB: "x", OptionC: "ln(x)", OptionD: "e^x",
				CorrectAnswer: 0, Explanation: "The derivative of ln(x) is 1/x", Order: 4},
		},
	}

	exams := []model.Exam{
		{UserID: owner, Title: "Midterm Exam", Subject: "Physics - Mechanics", ExamDate: day.AddDays(5)},
	}

	assignments := []model.Assignment{
		{UserID: owner, Title: "Calculus Problem Set 5", Subject: "Mathematics", DueDate: day.AddDays(3), Status: model.StatusCompleted},
		{UserID: owner, Title: "Data Structures Project", Subject: "Computer Science", DueDate: day.AddDays(5), Status: model.StatusCompleted},
		{UserID: owner, Title: "Physics Lab Report", Subject: "Physics", DueDate: day.AddDays(7), Status: model.StatusInProgress},
		{UserID: owner, Title: "Algorithm Analysis", Subject: "Computer Science", DueDate: day.AddDays(10), Status: model.StatusPending},
	}

	goals := []model.WeeklyGoal{
		{UserID: owner, Text: "Complete 3 practice problems for Calculus", Status: model.StatusCompleted, WeekStart: week},
		{UserID: owner, Text: "Finish reading Chapter 7 - Biology", Status: model.StatusInProgress, WeekStart: week},
		{UserID: owner, Text: "Start preparing for History midterm", Status: model.StatusPending, WeekStart: week},
	}

	activities := []model.StudyActivity{
		{UserID: owner, Text: "Completed Chapter 5 Notes - Linear Algebra", ActivityTime: current.Add(-30 * time.Minute)},
		{UserID: owner, Text: "Submitted Assignment - Data Structures Project", ActivityTime: current.Add(-2 * time.Hour)},
		{UserID: owner, Text: "Reviewed for upcoming Physics exam", ActivityTime: current.Add(-24 * time.Hour)},
	}

	performance := []model.SubjectPerformance{
		{UserID: owner, Subject: "Mathematics", Grade: "A-", Percentage: 85},
		{UserID: owner, Subject: "Computer Science", Grade: "A", Percentage: 92},
		{UserID: owner, Subject: "Physics", Grade: "B+", Percentage: 78},
	}

	return []any{&schedule, quiz, &exams, &assignments, &goals, &activities, &performance}
}
