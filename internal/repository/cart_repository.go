package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CartRepository interface {
	// id / created_at はDB側で採番
	Create(ctx context.Context) (model.Cart, error)
}
