package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Repository[model.Exam]
	FindUpcoming(ctx context.Context, userID uint, from model.Date, n int) ([]model.Exam, error)
}

type examRepository struct {
	ownedRepository[model.Exam]
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{ownedRepository[model.Exam]{db: db, order: "exam_date ASC, id ASC"}}
}

func (r *examRepository) FindUpcoming(ctx context.Context, userID uint, from model.Date, n int) ([]model.Exam, error) {
	return r.list(ctx, userID, func(db *gorm.DB) *gorm.DB {
		return db.Where("exam_date >= ?", from)
	}, limit(n))
}
