package video

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, v *Video) error
	List(ctx context.Context) ([]*Video, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) List(ctx context.Context) ([]*Video, error) {
	var videos []*Video
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error
	return videos, err
}
