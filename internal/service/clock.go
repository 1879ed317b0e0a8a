package service

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/lshigami/studydash/config"
	"github.com/lshigami/studydash/internal/model"
	"github.com/rs/zerolog/log"
)

// Clock supplies the current time in the configured zone. All "today" and
// "this week" computations go through it so resource endpoints and the
// dashboard agree.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewClock(cfg *config.Config) Clock {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("Unknown timezone, falling back to UTC")
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }

func today(c Clock) model.Date {
	return model.DateOf(c.Now())
}

var mondayWeeks = &now.Config{WeekStartDay: time.Monday}

// WeekStart is the Monday on or before d.
func WeekStart(d model.Date) model.Date {
	return model.DateOf(mondayWeeks.With(d.Time()).BeginningOfWeek())
}
