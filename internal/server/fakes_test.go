package server_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// =====================
// in-memory storage
// =====================

type memDB struct {
	mu       sync.Mutex
	products map[int64]model.Product
	carts    map[int64]model.Cart
	items    []model.CartItem
	orders   []model.Order
	seq      int64
	failWith error
}

func newMemDB() *memDB {
	return &memDB{
		products: map[int64]model.Product{
			1: {ID: 1, Name: "Mug", Price: decimal.RequireFromString("12.50"), Image: "mug.png", ShortDescription: "a mug", LongDescription: "a big mug"},
			2: {ID: 2, Name: "Tee", Price: decimal.RequireFromString("19.99"), Image: "tee.png", ShortDescription: "a tee", LongDescription: "a cotton tee"},
		},
		carts: map[int64]model.Cart{},
	}
}

func (m *memDB) next() int64 {
	m.seq++
	return m.seq
}

func (m *memDB) setPrice(id int64, price string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.products[id]
	p.Price = decimal.RequireFromString(price)
	m.products[id] = p
}

func (m *memDB) dropCart(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, id)
}

func (m *memDB) counts() (carts, items, orders int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts), len(m.items), len(m.orders)
}

func (m *memDB) Products() repo.ProductRepository   { return memProducts{m} }
func (m *memDB) Carts() repo.CartRepository         { return memCarts{m} }
func (m *memDB) CartItems() repo.CartItemRepository { return memItems{m} }
func (m *memDB) Orders() repo.OrderRepository       { return memOrders{m} }

func (m *memDB) WithinTx(_ context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m)
}

func (m *memDB) Check(context.Context) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}
	return "successfully connected", nil
}

type memProducts struct{ db *memDB }

func (r memProducts) List(context.Context) ([]model.ProductSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWith != nil {
		return nil, r.db.failWith
	}

	out := make([]model.ProductSummary, 0, len(r.db.products))
	for _, p := range r.db.products {
		out = append(out, model.ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, ShortDescription: p.ShortDescription})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProducts) FindByID(_ context.Context, id int64) (model.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r memProducts) FindPrice(ctx context.Context, id int64) (decimal.Decimal, error) {
	p, err := r.FindByID(ctx, id)
	return p.Price, err
}

type memCarts struct{ db *memDB }

func (r memCarts) Create(context.Context) (model.Cart, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c := model.Cart{ID: r.db.next(), CreatedAt: time.Now()}
	r.db.carts[c.ID] = c
	return c, nil
}

type memItems struct{ db *memDB }

func (r memItems) Create(_ context.Context, item model.CartItem) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.carts[item.CartID]; !ok {
		return 0, repo.ErrCartNotFound
	}
	if _, ok := r.db.products[item.ProductID]; !ok {
		return 0, repo.ErrNotFound
	}
	item.ID = r.db.next()
	r.db.items = append(r.db.items, item)
	return item.ID, nil
}

func (r memItems) view(it model.CartItem) model.CartItemView {
	p := r.db.products[it.ProductID]
	return model.CartItemView{ID: it.ID, Price: it.Price, ProductID: p.ID, Image: p.Image, Name: p.Name, ShortDescription: p.ShortDescription}
}

func (r memItems) FindViewByID(_ context.Context, id int64) (model.CartItemView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, it := range r.db.items {
		if it.ID == id {
			return r.view(it), nil
		}
	}
	return model.CartItemView{}, repo.ErrNotFound
}

func (r memItems) ListViewsByCartID(_ context.Context, cartID int64) ([]model.CartItemView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []model.CartItemView{}
	for _, it := range r.db.items {
		if it.CartID == cartID {
			out = append(out, r.view(it))
		}
	}
	return out, nil
}

type memOrders struct{ db *memDB }

func (r memOrders) Create(_ context.Context, o model.Order) (model.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.carts[o.CartID]; !ok {
		return model.Order{}, repo.ErrCartNotFound
	}
	o.ID = r.db.next()
	o.CreatedAt = time.Now()
	r.db.orders = append(r.db.orders, o)
	return o, nil
}
