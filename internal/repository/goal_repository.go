package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type WeeklyGoalRepository interface {
	Repository[model.WeeklyGoal]
	FindByWeek(ctx context.Context, userID uint, weekStart model.Date) ([]model.WeeklyGoal, error)
}

type weeklyGoalRepository struct {
	ownedRepository[model.WeeklyGoal]
}

func NewWeeklyGoalRepository(db *gorm.DB) WeeklyGoalRepository {
	return &weeklyGoalRepository{ownedRepository[model.WeeklyGoal]{db: db, order: "week_start DESC, status ASC, id ASC"}}
}

func (r *weeklyGoalRepository) FindByWeek(ctx context.Context, userID uint, weekStart model.Date) ([]model.WeeklyGoal, error) {
	return r.list(ctx, userID, func(db *gorm.DB) *gorm.DB {
		return db.Where("week_start = ?", weekStart)
	})
}
