package model

// Sessionは訪問者ごとの状態。持つのはカートIDだけ。
// usecaseには値で渡し、更新後の値を戻り値で受け取る。
type Session struct {
	CartID int64 `json:"cartId,omitempty"`
}

// カートが紐づいているか
func (s Session) HasCart() bool {
	return s.CartID > 0
}

func (s Session) WithCart(cartID int64) Session {
	s.CartID = cartID
	return s
}

func (s Session) WithoutCart() Session {
	s.CartID = 0
	return s
}
