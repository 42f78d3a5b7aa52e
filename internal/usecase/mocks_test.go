package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.ProductSummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ProductSummary)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindPrice(ctx context.Context, id int64) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	price, _ := args.Get(0).(decimal.Decimal)
	return price, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Create(ctx context.Context) (model.Cart, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartItemRepoMock) FindViewByID(ctx context.Context, cartItemID int64) (model.CartItemView, error) {
	args := m.Called(ctx, cartItemID)
	v, _ := args.Get(0).(model.CartItemView)
	return v, args.Error(1)
}

func (m *CartItemRepoMock) ListViewsByCartID(ctx context.Context, cartID int64) ([]model.CartItemView, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItemView)
	return items, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishOrderPlaced(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// トランザクションは張らずにfnをそのまま呼ぶ
type fakeTx struct {
	products  *ProductRepoMock
	carts     *CartRepoMock
	cartItems *CartItemRepoMock
	orders    *OrderRepoMock
	calls     int
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		products:  new(ProductRepoMock),
		carts:     new(CartRepoMock),
		cartItems: new(CartItemRepoMock),
		orders:    new(OrderRepoMock),
	}
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	f.calls++
	return fn(f)
}

func (f *fakeTx) Products() repo.ProductRepository   { return f.products }
func (f *fakeTx) Carts() repo.CartRepository         { return f.carts }
func (f *fakeTx) CartItems() repo.CartItemRepository { return f.cartItems }
func (f *fakeTx) Orders() repo.OrderRepository       { return f.orders }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
