package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateDaysUntilNeverNegative(t *testing.T) {
	today := Date("2026-10-19")

	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 2, Date("2026-10-21").DaysUntil(today))
	assert.Equal(t, 0, Date("2026-10-01").DaysUntil(today))
	assert.Equal(t, 13, Date("2026-11-01").DaysUntil(today))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2026-03-09"), d)

	require.NoError(t, d.Scan("2026-03-10T00:00:00Z"))
	assert.Equal(t, Date("2026-03-10"), d)

	require.NoError(t, d.Scan([]byte("2026-03-11")))
	assert.Equal(t, Date("2026-03-11"), d)

	assert.Error(t, d.Scan(42))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("19/10/2026")
	assert.Error(t, err)

	d, err := ParseDate(" 2026-10-19 ")
	require.NoError(t, err)
	assert.Equal(t, Date("2026-10-19"), d)
	assert.Equal(t, Date("2026-10-26"), d.AddDays(7))
}

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]TimeOfDay{
		"09:00":           "09:00:00",
		"14:30:15":        "14:30:15",
		"08:05:00.123456": "08:05:00",
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseTimeOfDay("9am")
	assert.Error(t, err)
	assert.Equal(t, "14:30", TimeOfDay("14:30:15").Short())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 60, Percentage(3, 5))
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, 0))
	assert.Equal(t, 100, Percentage(4, 4))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 12, Percentage(1, 8))
	assert.Equal(t, 60, QuizAttempt{Score: 3, TotalQuestions: 5}.Percentage())
}

func TestQuestionOptionsOrder(t *testing.T) {
	q := QuizQuestion{OptionA: "x", OptionB: "2x", OptionC: "x²", OptionD: "2"}
	assert.Equal(t, []string{"x", "2x", "x²", "2"}, q.Options())
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan("09:00:00"))
	assert.Equal(t, TimeOfDay("09:00:00"), tod)

	require.NoError(t, tod.Scan([]byte("10:30")))
	assert.Equal(t, TimeOfDay("10:30:00"), tod)

	require.NoError(t, tod.Scan(time.Date(2000, 1, 1, 14, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeOfDay("14:05:00"), tod)

	assert.Error(t, tod.Scan(time.Time{}))
	assert.Equal(t, TimeOfDay("14:05:00"), tod)
	assert.Error(t, tod.Scan(42))
}
