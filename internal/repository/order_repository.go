package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	// 保存後の行（order_id, created_at込み）を返す。カートが無ければ ErrCartNotFound
	Create(ctx context.Context, order model.Order) (model.Order, error)
}
