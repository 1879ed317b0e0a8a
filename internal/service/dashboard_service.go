package service

import (
	"context"

	"github.com/lshigami/studydash/internal/dto"
)

const dashboardActivityLimit = 5

type DashboardService interface {
	Overview(ctx context.Context, userID uint) (*dto.DashboardResponse, error)
}

// dashboardService composes the per-resource services so the overview uses
// the same notion of "today" and "this week" as the individual endpoints.
type dashboardService struct {
	schedule    ScheduleService
	quizzes     QuizService
	exams       ExamService
	assignments AssignmentService
	goals       WeeklyGoalService
	activities  StudyActivityService
	performance SubjectPerformanceService
}

func NewDashboardService(
	schedule ScheduleService,
	quizzes QuizService,
	exams ExamService,
	assignments AssignmentService,
	goals WeeklyGoalService,
	activities StudyActivityService,
	performance SubjectPerformanceService,
) DashboardService {
	return &dashboardService{
		schedule:    schedule,
		quizzes:     quizzes,
		exams:       exams,
		assignments: assignments,
		goals:       goals,
		activities:  activities,
		performance: performance,
	}
}

func (s *dashboardService) Overview(ctx context.Context, userID uint) (*dto.DashboardResponse, error) {
	var (
		resp dto.DashboardResponse
		err  error
	)
	if resp.Schedule, err = s.schedule.Today(ctx, userID); err != nil {
		return nil, err
	}
	if resp.UpcomingQuiz, err = s.quizzes.NextUpcoming(ctx, userID); err != nil {
		return nil, err
	}
	if resp.UpcomingExam, err = s.exams.NextUpcoming(ctx, userID); err != nil {
		return nil, err
	}
	stats, err := s.assignments.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp.Assignments = *stats
	if resp.WeeklyGoals, err = s.goals.List(ctx, userID, false); err != nil {
		return nil, err
	}
	if resp.RecentActivities, err = s.activities.List(ctx, userID, dashboardActivityLimit); err != nil {
		return nil, err
	}
	if resp.SubjectPerformance, err = s.performance.List(ctx, userID); err != nil {
		return nil, err
	}
	return &resp, nil
}
