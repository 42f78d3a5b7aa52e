package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"golang.org/x/sync/singleflight"
)

const invalidProductIDMessage = "productId must be a positive integer"

// まとめた読み取りの上限（呼び出し元のキャンセルとは切り離す）
const sharedReadTimeout = 10 * time.Second

// ParseProductID はパスやbodyの productId を検証して数値にする。
// 数字以外・0以下は InvalidArgument（DBには触らない）。
func ParseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, InvalidArgument(invalidProductIDMessage)
	}
	return id, nil
}

// 商品カタログの読み取り
type ProductUsecase struct {
	productRepo repo.ProductRepository
	// 同じ読み取りが同時に来たら1回にまとめる（結果はキャッシュしない）
	sfg singleflight.Group
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.ProductSummary, error) {
	v, err := u.shared(ctx, "products", func(ctx context.Context) (interface{}, error) {
		return u.productRepo.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return v.([]model.ProductSummary), nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, InvalidArgument(invalidProductIDMessage)
	}

	v, err := u.shared(ctx, "product:"+strconv.FormatInt(productID, 10), func(ctx context.Context) (interface{}, error) {
		return u.productRepo.FindByID(ctx, productID)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NotFound(fmt.Sprintf("cannot find product with productId of %d", productID))
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("find product %d: %w", productID, err)
	}
	return v.(model.Product), nil
}

// sharedは同じkeyの読み取りを1回にまとめる。
// 先頭の呼び出し元が切断しても、合流した他の呼び出し元は結果を受け取れる。
func (u *ProductUsecase) shared(ctx context.Context, key string, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ch := u.sfg.DoChan(key, func() (interface{}, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedReadTimeout)
		defer cancel()
		return fn(readCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.Val, r.Err
	}
}
