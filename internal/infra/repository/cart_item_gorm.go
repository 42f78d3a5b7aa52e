package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

const cartItemViewColumns = `c.cart_item_id, c.price, p.product_id, p.image, p.name, p.short_description`

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// 明細を追加（価格は呼び出し側で取ったスナップショット）
func (r *CartItemGormRepository) Create(ctx context.Context, item model.CartItem) (int64, error) {
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return 0, classifyForeignKey(err)
	}
	return item.ID, nil
}

// 明細1件を商品情報つきで取得
func (r *CartItemGormRepository) FindViewByID(ctx context.Context, cartItemID int64) (model.CartItemView, error) {
	var v model.CartItemView

	err := r.joined(ctx).
		Where("c.cart_item_id = ?", cartItemID).
		Take(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItemView{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItemView{}, err
	}
	return v, nil
}

// カートの明細を商品情報つきで一覧取得
func (r *CartItemGormRepository) ListViewsByCartID(ctx context.Context, cartID int64) ([]model.CartItemView, error) {
	var views []model.CartItemView

	err := r.joined(ctx).
		Where("c.cart_id = ?", cartID).
		Order("c.cart_item_id asc").
		Scan(&views).Error
	if err != nil {
		return []model.CartItemView{}, err
	}
	if views == nil {
		views = []model.CartItemView{}
	}
	return views, nil
}

func (r *CartItemGormRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("cart_items AS c").
		Select(cartItemViewColumns).
		Joins("JOIN products AS p ON p.product_id = c.product_id")
}
