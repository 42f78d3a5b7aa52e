package usecase

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// セッションが持つカートIDを返す。無ければカートを作る。
// セッションへの書き戻しはしない（明細の追加が成功してから呼び出し側で行う）。
func resolveOrCreateCart(ctx context.Context, carts repo.CartRepository, sess model.Session) (int64, bool, error) {
	if sess.HasCart() {
		return sess.CartID, false, nil
	}

	cart, err := carts.Create(ctx)
	if err != nil {
		return 0, false, err
	}
	return cart.ID, true, nil
}

// 読み取り用。カートが無ければ ok=false（DBには触らない）。
func readCart(sess model.Session) (int64, bool) {
	if !sess.HasCart() {
		return 0, false
	}
	return sess.CartID, true
}
