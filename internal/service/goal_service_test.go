package service

import (
	"errors"
	"testing"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	cases := map[model.Date]model.Date{
		"2026-10-19": "2026-10-19", // Monday
		"2026-10-21": "2026-10-19", // Wednesday
		"2026-10-25": "2026-10-19", // Sunday
		"2026-11-02": "2026-11-02",
		"2027-01-01": "2026-12-28",
	}
	for day, monday := range cases {
		assert.Equal(t, monday, WeekStart(day), string(day))
	}
}

func TestGoalsDefaultToCurrentWeek(t *testing.T) {
	f := newFixture(t)
	for _, in := range []dto.WeeklyGoalInput{
		{Text: ptr("this week"), WeekStart: ptr("2026-10-19")},
		{Text: ptr("last week"), WeekStart: ptr("2026-10-12")},
		{Text: ptr("defaulted")},
	} {
		_, err := f.goals.Create(f.ctx, f.alice, in)
		require.NoError(t, err)
	}

	current, err := f.goals.List(f.ctx, f.alice, false)
	require.NoError(t, err)
	require.Len(t, current, 2)
	for _, g := range current {
		assert.Equal(t, "2026-10-19", g.WeekStart)
	}

	all, err := f.goals.List(f.ctx, f.alice, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "last week", all[2].Text)
}

func TestGoalUpdateStatus(t *testing.T) {
	f := newFixture(t)
	goal, err := f.goals.Create(f.ctx, f.alice, dto.WeeklyGoalInput{Text: ptr("read chapter 7")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, goal.Status)

	updated, err := f.goals.UpdateStatus(f.ctx, f.alice, goal.ID, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)

	_, err = f.goals.UpdateStatus(f.ctx, f.alice, goal.ID, "archived")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Invalid status", verr.Message)

	stored, err := f.goals.Get(f.ctx, f.alice, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, stored.Status)

	_, err = f.goals.UpdateStatus(f.ctx, f.bob, goal.ID, model.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}
