package model_test

import (
	"testing"

	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayRoundTripsThroughSQLite(t *testing.T) {
	db := testutil.NewTestDB(t)

	item := model.ScheduleItem{
		Subject:   "Calculus",
		Status:    model.StatusUpcoming,
		Date:      "2026-10-21",
		StartTime: "09:00:00",
		EndTime:   "10:30:00",
	}
	require.NoError(t, db.Create(&item).Error)

	var raw, kind string
	require.NoError(t, db.Raw("SELECT start_time, typeof(start_time) FROM schedule_items WHERE id = ?", item.ID).
		Row().Scan(&raw, &kind))
	assert.Equal(t, "09:00:00", raw)
	assert.Equal(t, "text", kind)

	var got model.ScheduleItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, model.TimeOfDay("09:00:00"), got.StartTime)
	assert.Equal(t, model.TimeOfDay("10:30:00"), got.EndTime)
	assert.Equal(t, model.Date("2026-10-21"), got.Date)

	got.Status = model.StatusCompleted
	require.NoError(t, db.Save(&got).Error)

	var reread model.ScheduleItem
	require.NoError(t, db.First(&reread, item.ID).Error)
	assert.Equal(t, model.TimeOfDay("09:00:00"), reread.StartTime)
	assert.Equal(t, "09:00", reread.StartTime.Short())
}
