package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 空のカートを作成（id / created_at はDBの値を返す）
func (r *CartGormRepository) Create(ctx context.Context) (model.Cart, error) {
	var cart model.Cart
	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&cart).Error; err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}
