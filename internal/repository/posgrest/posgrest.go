package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides the basic persistence operations for any entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetAll retrieves entities of type T, newest first by the given order column.
func (r *repository[T]) GetAll(ctx context.Context, order string, limit int) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order(order).Limit(limit).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a condition such as "batch_id = ?".
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update saves every field of an existing entity identified by ID.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Model(entity).Where("id = ?", id).Select("*").Updates(entity).Error
}
