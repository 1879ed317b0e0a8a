package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OwnedBy restricts a query to rows of one user.
func OwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Repository is the CRUD surface shared by every user owned entity.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, userID, id uint) (*T, error)
	FindAll(ctx context.Context, userID uint) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, userID, id uint) error
}

type ownedRepository[T any] struct {
	db    *gorm.DB
	order string
}

func (r *ownedRepository[T]) scoped(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(OwnedBy(userID))
}

func (r *ownedRepository[T]) list(ctx context.Context, userID uint, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var rows []T
	err := r.scoped(ctx, userID).Scopes(scopes...).Order(r.order).Find(&rows).Error
	return rows, err
}

func (r *ownedRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *ownedRepository[T]) FindByID(ctx context.Context, userID, id uint) (*T, error) {
	var entity T
	err := r.scoped(ctx, userID).First(&entity, id).Error
	return &entity, err
}

func (r *ownedRepository[T]) FindAll(ctx context.Context, userID uint) ([]T, error) {
	return r.list(ctx, userID)
}

func (r *ownedRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

// Delete returns gorm.ErrRecordNotFound when no owned row matched.
func (r *ownedRepository[T]) Delete(ctx context.Context, userID, id uint) error {
	result := r.scoped(ctx, userID).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func limit(n int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}
