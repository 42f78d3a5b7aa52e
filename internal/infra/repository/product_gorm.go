package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 一覧（保存順）。ページングなし。
func (r *ProductGormRepository) List(ctx context.Context) ([]model.ProductSummary, error) {
	var items []model.ProductSummary

	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("product_id, name, price, image, short_description").
		Order("product_id asc").
		Scan(&items).Error
	if err != nil {
		return []model.ProductSummary{}, err
	}
	if items == nil {
		items = []model.ProductSummary{}
	}
	return items, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("product_id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 明細に保存する価格
func (r *ProductGormRepository) FindPrice(ctx context.Context, id int64) (decimal.Decimal, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Select("price").
		Where("product_id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, repo.ErrNotFound
	}
	if err != nil {
		return decimal.Zero, err
	}
	return p.Price, nil
}
