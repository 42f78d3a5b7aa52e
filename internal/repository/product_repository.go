package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// セッションが指すカートが保存先に存在しない（FK違反）
var ErrCartNotFound = errors.New("cart not found")

// 商品カタログの読み取りだけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.ProductSummary, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// 明細に保存する価格だけを引く
	FindPrice(ctx context.Context, id int64) (decimal.Decimal, error)
}
