package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Repository[model.Quiz]
	FindByIDWithQuestions(ctx context.Context, userID, id uint) (*model.Quiz, error)
	FindUpcoming(ctx context.Context, userID uint, from model.Date, n int) ([]model.Quiz, error)
	CreateAttempt(ctx context.Context, attempt *model.QuizAttempt) error
	FindAttempts(ctx context.Context, userID, quizID uint) ([]model.QuizAttempt, error)
}

type quizRepository struct {
	ownedRepository[model.Quiz]
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{ownedRepository[model.Quiz]{db: db, order: "quiz_date ASC, id ASC"}}
}

func (r *quizRepository) FindByIDWithQuestions(ctx context.Context, userID, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.scoped(ctx, userID).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.sort_order ASC, quiz_questions.id ASC")
	}).First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindUpcoming(ctx context.Context, userID uint, from model.Date, n int) ([]model.Quiz, error) {
	return r.list(ctx, userID, func(db *gorm.DB) *gorm.DB {
		return db.Where("quiz_date >= ?", from)
	}, limit(n))
}

func (r *quizRepository) CreateAttempt(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *quizRepository) FindAttempts(ctx context.Context, userID, quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("completed_at DESC, id DESC").
		Find(&attempts).Error
	return attempts, err
}

// Delete removes the quiz together with its questions and attempts.
func (r *quizRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.Scopes(OwnedBy(userID)).Select("id").First(&quiz, id).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, quiz.ID).Error
	})
}
