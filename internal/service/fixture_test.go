package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/lshigami/studydash/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Wednesday; the week starts on Monday 2026-10-19.
var wednesday = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

type fixture struct {
	ctx   context.Context
	db    *gorm.DB
	clock fixedClock
	alice uint
	bob   uint

	schedule    ScheduleService
	quizzes     QuizService
	questions   QuizQuestionService
	assignments AssignmentService
	goals       WeeklyGoalService
	activities  StudyActivityService
	performance SubjectPerformanceService
	exams       ExamService
	dashboard   DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	clock := fixedClock{t: wednesday}

	f := &fixture{ctx: context.Background(), db: db, clock: clock}
	f.alice = createUser(t, db, "alice")
	f.bob = createUser(t, db, "bob")

	quizRepo := repository.NewQuizRepository(db)
	f.schedule = NewScheduleService(repository.NewScheduleRepository(db), clock)
	f.quizzes = NewQuizService(quizRepo, clock)
	f.questions = NewQuizQuestionService(repository.NewQuizQuestionRepository(db), quizRepo)
	f.assignments = NewAssignmentService(repository.NewAssignmentRepository(db))
	f.goals = NewWeeklyGoalService(repository.NewWeeklyGoalRepository(db), clock)
	f.activities = NewStudyActivityService(repository.NewStudyActivityRepository(db), clock)
	f.performance = NewSubjectPerformanceService(repository.NewSubjectPerformanceRepository(db))
	f.exams = NewExamService(repository.NewExamRepository(db), clock)
	f.dashboard = NewDashboardService(f.schedule, f.quizzes, f.exams, f.assignments, f.goals, f.activities, f.performance)
	return f
}

func createUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := model.User{Username: username, PasswordHash: "unused", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func ptr[T any](v T) *T {
	return &v
}
