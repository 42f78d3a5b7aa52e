package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// CartUsecase は /api/cart の業務ロジックです。
// セッションは引数で受け取り、更新後のセッションを戻り値で返します。
type CartUsecase struct {
	tx           repo.TransactionManager
	cartItemRepo repo.CartItemRepository
}

func NewCartUsecase(tx repo.TransactionManager, cartItemRepo repo.CartItemRepository) *CartUsecase {
	return &CartUsecase{
		tx:           tx,
		cartItemRepo: cartItemRepo,
	}
}

// GetCart はカートの明細一覧（カートが無ければ空）。
func (u *CartUsecase) GetCart(ctx context.Context, sess model.Session) ([]model.CartItemView, error) {
	cartID, ok := readCart(sess)
	if !ok {
		return []model.CartItemView{}, nil
	}

	items, err := u.cartItemRepo.ListViewsByCartID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart %d: %w", cartID, err)
	}
	return items, nil
}

// AddToCart は商品を1件追加する。価格は追加時点の値を明細に保存。
// 初回はカートを作り、そのIDを紐づけたセッションを返す。
func (u *CartUsecase) AddToCart(ctx context.Context, sess model.Session, productID int64) (model.CartItemView, model.Session, error) {
	if productID <= 0 {
		return model.CartItemView{}, sess, InvalidArgument(invalidProductIDMessage)
	}

	var (
		view   model.CartItemView
		cartID int64
	)

	// 価格取得〜カート作成〜明細追加〜読み直しは1トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		price, err := r.Products().FindPrice(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NotFound(fmt.Sprintf("cannot find product with productId of %d", productID))
		}
		if err != nil {
			return fmt.Errorf("find price of product %d: %w", productID, err)
		}

		cartID, _, err = resolveOrCreateCart(ctx, r.Carts(), sess)
		if err != nil {
			return fmt.Errorf("create cart: %w", err)
		}

		itemID, err := r.CartItems().Create(ctx, model.CartItem{
			CartID:    cartID,
			ProductID: productID,
			Price:     price,
		})
		if errors.Is(err, repo.ErrCartNotFound) {
			return InvalidState("shopping cart no longer exists")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return NotFound(fmt.Sprintf("cannot find product with productId of %d", productID))
		}
		if err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}

		view, err = r.CartItems().FindViewByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("read cart item %d: %w", itemID, err)
		}
		return nil
	})

	if errors.Is(err, ErrInvalidState) {
		// 存在しないカートを指していたので紐づけを外す
		return model.CartItemView{}, sess.WithoutCart(), err
	}
	if err != nil {
		return model.CartItemView{}, sess, err
	}
	return view, sess.WithCart(cartID), nil
}
