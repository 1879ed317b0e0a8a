package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Repository[model.Assignment]
	CountByStatus(ctx context.Context, userID uint) (completed, total int64, err error)
}

type assignmentRepository struct {
	ownedRepository[model.Assignment]
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{ownedRepository[model.Assignment]{db: db, order: "due_date ASC, id ASC"}}
}

func (r *assignmentRepository) CountByStatus(ctx context.Context, userID uint) (completed, total int64, err error) {
	if err = r.scoped(ctx, userID).Model(&model.Assignment{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.scoped(ctx, userID).Model(&model.Assignment{}).
		Where("status = ?", model.StatusCompleted).
		Count(&completed).Error
	return completed, total, err
}
