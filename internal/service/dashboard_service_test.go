package service

import (
	"testing"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEmptyAccount(t *testing.T) {
	f := newFixture(t)
	overview, err := f.dashboard.Overview(f.ctx, f.alice)
	require.NoError(t, err)

	assert.Empty(t, overview.Schedule)
	assert.Nil(t, overview.UpcomingQuiz)
	assert.Nil(t, overview.UpcomingExam)
	assert.Equal(t, dto.AssignmentStatsResponse{}, overview.Assignments)
	assert.Empty(t, overview.WeeklyGoals)
}

func TestDashboardOverSeededData(t *testing.T) {
	f := newFixture(t)
	seeder := NewSeedService(f.db, f.clock)

	seeded, err := seeder.SeedIfEmpty(f.ctx, f.alice)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = seeder.SeedIfEmpty(f.ctx, f.alice)
	require.NoError(t, err)
	assert.False(t, seeded)

	overview, err := f.dashboard.Overview(f.ctx, f.alice)
	require.NoError(t, err)

	require.Len(t, overview.Schedule, 3)
	assert.Equal(t, "09:00", overview.Schedule[0].StartTime)
	assert.Equal(t, "Mathematics - Calculus II", overview.Schedule[0].Subject)

	require.NotNil(t, overview.UpcomingQuiz)
	assert.Equal(t, "Mathematics Quiz", overview.UpcomingQuiz.Title)
	assert.Equal(t, 2, overview.UpcomingQuiz.DaysUntil)

	require.NotNil(t, overview.UpcomingExam)
	assert.Equal(t, 5, overview.UpcomingExam.DaysUntil)

	assert.Equal(t, dto.AssignmentStatsResponse{Completed: 2, Total: 4, Remaining: 2}, overview.Assignments)
	assert.Len(t, overview.WeeklyGoals, 3)
	require.Len(t, overview.RecentActivities, 3)
	assert.Equal(t, "Completed Chapter 5 Notes - Linear Algebra", overview.RecentActivities[0].Text)

	require.Len(t, overview.SubjectPerformance, 3)
	assert.Equal(t, 92, overview.SubjectPerformance[0].Percentage)

	quiz, err := f.quizzes.Get(f.ctx, f.alice, overview.UpcomingQuiz.ID)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 5)

	other, err := f.dashboard.Overview(f.ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, other.Schedule)
	assert.Nil(t, other.UpcomingQuiz)
}
