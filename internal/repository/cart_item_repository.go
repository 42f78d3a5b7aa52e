package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CartItemRepository interface {
	// 追加した明細のIDを返す。カートが無ければ ErrCartNotFound
	Create(ctx context.Context, item model.CartItem) (int64, error)
	FindViewByID(ctx context.Context, cartItemID int64) (model.CartItemView, error)
	ListViewsByCartID(ctx context.Context, cartID int64) ([]model.CartItemView, error)
}
