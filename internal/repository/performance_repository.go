package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type SubjectPerformanceRepository interface {
	Repository[model.SubjectPerformance]
	SubjectTaken(ctx context.Context, userID uint, subject string, exceptID uint) (bool, error)
}

type subjectPerformanceRepository struct {
	ownedRepository[model.SubjectPerformance]
}

func NewSubjectPerformanceRepository(db *gorm.DB) SubjectPerformanceRepository {
	return &subjectPerformanceRepository{ownedRepository[model.SubjectPerformance]{db: db, order: "percentage DESC, id ASC"}}
}

// SubjectTaken reports whether another row of the user already uses subject.
func (r *subjectPerformanceRepository) SubjectTaken(ctx context.Context, userID uint, subject string, exceptID uint) (bool, error) {
	var count int64
	err := r.scoped(ctx, userID).Model(&model.SubjectPerformance{}).
		Where("subject = ? AND id <> ?", subject, exceptID).
		Count(&count).Error
	return count > 0, err
}
