package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type StudyActivityRepository interface {
	Repository[model.StudyActivity]
	FindRecent(ctx context.Context, userID uint, n int) ([]model.StudyActivity, error)
}

type studyActivityRepository struct {
	ownedRepository[model.StudyActivity]
}

func NewStudyActivityRepository(db *gorm.DB) StudyActivityRepository {
	return &studyActivityRepository{ownedRepository[model.StudyActivity]{db: db, order: "activity_time DESC, id DESC"}}
}

// FindRecent returns the newest n activities; n <= 0 returns all of them.
func (r *studyActivityRepository) FindRecent(ctx context.Context, userID uint, n int) ([]model.StudyActivity, error) {
	return r.list(ctx, userID, limit(n))
}
