package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Repository[model.ScheduleItem]
	FindByDate(ctx context.Context, userID uint, date model.Date) ([]model.ScheduleItem, error)
}

type scheduleRepository struct {
	ownedRepository[model.ScheduleItem]
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{ownedRepository[model.ScheduleItem]{db: db, order: "date ASC, start_time ASC, id ASC"}}
}

func (r *scheduleRepository) FindByDate(ctx context.Context, userID uint, date model.Date) ([]model.ScheduleItem, error) {
	return r.list(ctx, userID, func(db *gorm.DB) *gorm.DB {
		return db.Where("date = ?", date)
	})
}
