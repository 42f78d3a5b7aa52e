package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// INSERT ... RETURNING * で保存後の行を返す
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	order.ID = 0
	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&order).Error; err != nil {
		return model.Order{}, classifyForeignKey(err)
	}
	return order, nil
}
