package repository

import (
	"context"

	"github.com/lshigami/studydash/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepository interface {
	GetOrCreate(ctx context.Context, userID uint, candidateKey string) (*model.AuthToken, error)
	FindByKey(ctx context.Context, key string) (*model.AuthToken, error)
	DeleteByKey(ctx context.Context, key string) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// GetOrCreate inserts candidateKey unless the user already has a token and
// returns whichever token is stored. Concurrent callers converge on one row
// through the unique user_id index.
func (r *tokenRepository) GetOrCreate(ctx context.Context, userID uint, candidateKey string) (*model.AuthToken, error) {
	db := r.db.WithContext(ctx)
	candidate := model.AuthToken{Key: candidateKey, UserID: userID}
	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	var token model.AuthToken
	if err := db.Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.WithContext(ctx).Preload("User").Where(&model.AuthToken{Key: key}).First(&token).Error
	return &token, err
}

func (r *tokenRepository) DeleteByKey(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where(&model.AuthToken{Key: key}).Delete(&model.AuthToken{}).Error
}
