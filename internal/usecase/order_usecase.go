package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 注文確定イベントの送信先
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order model.Order) error
}

type OrderUsecase struct {
	orders    repo.OrderRepository
	publisher OrderEventPublisher
	log       *slog.Logger
}

func NewOrderUsecase(orders repo.OrderRepository, publisher OrderEventPublisher, log *slog.Logger) *OrderUsecase {
	return &OrderUsecase{orders: orders, publisher: publisher, log: log}
}

// OAS: PlaceOrderRequest
type PlaceOrderInput struct {
	Name            string
	CreditCard      string
	ShippingAddress string
}

// PlaceOrder はカートの中身で注文を作り、セッションからカートを外す。
// カートと明細は削除しない（注文から参照される）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, sess model.Session, in PlaceOrderInput) (model.Order, model.Session, error) {
	if !sess.HasCart() {
		return model.Order{}, sess, InvalidState("missing shopping cart")
	}

	if isBlank(in.Name) || isBlank(in.CreditCard) || isBlank(in.ShippingAddress) {
		return model.Order{}, sess, InvalidArgument("fields cannot be empty")
	}

	// 値は検証・加工せずそのまま保存
	order, err := u.orders.Create(ctx, model.Order{
		CartID:          sess.CartID,
		Name:            in.Name,
		CreditCard:      in.CreditCard,
		ShippingAddress: in.ShippingAddress,
	})
	if errors.Is(err, repo.ErrCartNotFound) {
		return model.Order{}, sess.WithoutCart(), InvalidState("missing shopping cart")
	}
	if err != nil {
		return model.Order{}, sess, fmt.Errorf("insert order for cart %d: %w", sess.CartID, err)
	}

	// イベント送信の失敗で注文は失敗にしない
	if err := u.publisher.PublishOrderPlaced(ctx, order); err != nil {
		u.log.WarnContext(ctx, "publish order placed failed",
			slog.Int64("order_id", order.ID),
			slog.Any("err", err),
		)
	}

	return order, sess.WithoutCart(), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
