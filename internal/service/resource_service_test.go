package service

import (
	"errors"
	"testing"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleIsScopedToOwner(t *testing.T) {
	f := newFixture(t)

	item, err := f.schedule.Create(f.ctx, f.alice, dto.ScheduleItemInput{
		Subject: ptr("Physics - Mechanics"), StartTime: ptr("14:00"), EndTime: ptr("15:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-21", item.Date)
	assert.Equal(t, "14:00", item.StartTime)
	assert.Equal(t, model.StatusUpcoming, item.Status)

	var stored model.ScheduleItem
	require.NoError(t, f.db.First(&stored, item.ID).Error)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, f.alice, *stored.UserID)

	mine, err := f.schedule.Today(f.ctx, f.alice)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := f.schedule.Today(f.ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = f.schedule.Get(f.ctx, f.bob, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.schedule.MarkCompleted(f.ctx, f.bob, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.schedule.Delete(f.ctx, f.bob, item.ID), ErrNotFound)
}

func TestScheduleListOrderAndDateFilter(t *testing.T) {
	f := newFixture(t)
	for _, in := range []dto.ScheduleItemInput{
		{Subject: ptr("late"), StartTime: ptr("14:00"), EndTime: ptr("15:00")},
		{Subject: ptr("early"), StartTime: ptr("09:00"), EndTime: ptr("10:00")},
		{Subject: ptr("tomorrow"), StartTime: ptr("08:00"), EndTime: ptr("09:00"), Date: ptr("2026-10-22")},
	} {
		_, err := f.schedule.Create(f.ctx, f.alice, in)
		require.NoError(t, err)
	}

	today, err := f.schedule.List(f.ctx, f.alice, nil)
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, "early", today[0].Subject)
	assert.Equal(t, "late", today[1].Subject)

	tomorrow := model.Date("2026-10-22")
	other, err := f.schedule.List(f.ctx, f.alice, &tomorrow)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "tomorrow", other[0].Subject)
}

func TestScheduleMarkCompletedIsIdempotent(t *testing.T) {
	f := newFixture(t)
	item, err := f.schedule.Create(f.ctx, f.alice, dto.ScheduleItemInput{
		Subject: ptr("Calculus"), StartTime: ptr("09:00"), EndTime: ptr("10:30"),
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		done, err := f.schedule.MarkCompleted(f.ctx, f.alice, item.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, done.Status)
		assert.Equal(t, "09:00", done.StartTime)
	}
}

func TestScheduleCreateRejectsBadTime(t *testing.T) {
	f := newFixture(t)
	_, err := f.schedule.Create(f.ctx, f.alice, dto.ScheduleItemInput{
		Subject: ptr("x"), StartTime: ptr("nine"), EndTime: ptr("10:00"),
	})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestAssignmentLinkAndStats(t *testing.T) {
	f := newFixture(t)

	a, err := f.assignments.Create(f.ctx, f.alice, dto.AssignmentInput{
		Title: ptr("Lab report"), Subject: ptr("Physics"), DueDate: ptr("2026-10-28"), Link: ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, a.Link)
	assert.Equal(t, model.StatusPending, a.Status)
	assert.Equal(t, "2026-10-28", a.DueDate)

	b, err := f.assignments.Create(f.ctx, f.alice, dto.AssignmentInput{
		Title: ptr("Problem set"), Subject: ptr("Maths"), DueDate: ptr("2026-10-24"), Link: ptr("https://example.com/ps5"),
	})
	require.NoError(t, err)
	require.NotNil(t, b.Link)

	_, err = f.assignments.MarkCompleted(f.ctx, f.alice, b.ID)
	require.NoError(t, err)
	_, err = f.assignments.Create(f.ctx, f.bob, dto.AssignmentInput{
		Title: ptr("Bob's"), Subject: ptr("Art"), DueDate: ptr("2026-10-24"),
	})
	require.NoError(t, err)

	stats, err := f.assignments.Stats(f.ctx, f.alice)
	require.NoError(t, err)
	assert.Equal(t, dto.AssignmentStatsResponse{Completed: 1, Total: 2, Remaining: 1}, *stats)

	list, err := f.assignments.List(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Problem set", list[0].Title)

	cleared, err := f.assignments.Update(f.ctx, f.alice, b.ID, dto.AssignmentInput{Link: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Link)
	assert.Equal(t, model.StatusCompleted, cleared.Status)
}

func TestActivitiesNewestFirstWithLimit(t *testing.T) {
	f := newFixture(t)
	for _, in := range []dto.StudyActivityInput{
		{Text: ptr("oldest"), ActivityTime: ptr("2026-10-19T08:00:00Z")},
		{Text: ptr("now")},
		{Text: ptr("middle"), ActivityTime: ptr("2026-10-20T08:00")},
	} {
		_, err := f.activities.Create(f.ctx, f.alice, in)
		require.NoError(t, err)
	}

	all, err := f.activities.List(f.ctx, f.alice, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"now", "middle", "oldest"}, []string{all[0].Text, all[1].Text, all[2].Text})

	two, err := f.activities.List(f.ctx, f.alice, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	recent, err := f.activities.Recent(f.ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestPerformanceUniquePerSubject(t *testing.T) {
	f := newFixture(t)
	in := dto.SubjectPerformanceInput{Subject: ptr("Mathematics"), Grade: ptr("A-"), Percentage: ptr(85)}

	_, err := f.performance.Create(f.ctx, f.alice, in)
	require.NoError(t, err)

	_, err = f.performance.Create(f.ctx, f.alice, in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	_, err = f.performance.Create(f.ctx, f.bob, in)
	require.NoError(t, err)

	_, err = f.performance.Create(f.ctx, f.alice, dto.SubjectPerformanceInput{
		Subject: ptr("Computer Science"), Grade: ptr("A"), Percentage: ptr(92),
	})
	require.NoError(t, err)

	rows, err := f.performance.List(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 92, rows[0].Percentage)
}

func TestExamDaysUntil(t *testing.T) {
	f := newFixture(t)
	_, err := f.exams.Create(f.ctx, f.alice, dto.ExamInput{Title: ptr("Past"), Subject: ptr("History"), ExamDate: ptr("2026-10-01")})
	require.NoError(t, err)
	future, err := f.exams.Create(f.ctx, f.alice, dto.ExamInput{Title: ptr("Midterm"), Subject: ptr("Physics"), ExamDate: ptr("2026-10-26")})
	require.NoError(t, err)
	assert.Equal(t, 5, future.DaysUntil)

	all, err := f.exams.List(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].DaysUntil)

	upcoming, err := f.exams.Upcoming(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Midterm", upcoming[0].Title)
}
