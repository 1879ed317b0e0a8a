package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
)

// QuizQuestionRepository scopes questions through the owner of their quiz.
type QuizQuestionRepository interface {
	Create(ctx context.Context, question *model.QuizQuestion) error
	FindByID(ctx context.Context, userID, id uint) (*model.QuizQuestion, error)
	FindAll(ctx context.Context, userID uint, quizID *uint) ([]model.QuizQuestion, error)
	FindByQuiz(ctx context.Context, quizID uint) ([]model.QuizQuestion, error)
	Update(ctx context.Context, question *model.QuizQuestion) error
	Delete(ctx context.Context, userID, id uint) error
}

type quizQuestionRepository struct {
	db *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) QuizQuestionRepository {
	return &quizQuestionRepository{db: db}
}

func (r *quizQuestionRepository) visible(ctx context.Context, userID uint) *gorm.DB {
	owned := r.db.Model(&model.Quiz{}).Select("id").Where("user_id = ?", userID)
	return r.db.WithContext(ctx).Where("quiz_id IN (?)", owned)
}

func (r *quizQuestionRepository) Create(ctx context.Context, question *model.QuizQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *quizQuestionRepository) FindByID(ctx context.Context, userID, id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.visible(ctx, userID).First(&question, id).Error
	return &question, err
}

func (r *quizQuestionRepository) FindAll(ctx context.Context, userID uint, quizID *uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	query := r.visible(ctx, userID)
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}
	err := query.Order("quiz_id ASC, sort_order ASC, id ASC").Find(&questions).Error
	return questions, err
}

func (r *quizQuestionRepository) FindByQuiz(ctx context.Context, quizID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("sort_order ASC, id ASC").Find(&questions).Error
	return questions, err
}

func (r *quizQuestionRepository) Update(ctx context.Context, question *model.QuizQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *quizQuestionRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.visible(ctx, userID).Delete(&model.QuizQuestion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
