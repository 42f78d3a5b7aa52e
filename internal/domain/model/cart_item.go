package model

import "github.com/shopspring/decimal"

// カートの明細
// 追加時点の価格を必ず保存。商品の価格はあとから読み直さない。
type CartItem struct {
	ID        int64           `gorm:"column:cart_item_id;primaryKey;autoIncrement" json:"cartItemId"`
	CartID    int64           `gorm:"not null;index" json:"cartId"`
	ProductID int64           `gorm:"not null;index" json:"productId"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (CartItem) TableName() string { return "cart_items" }

// 明細＋商品の表示用フィールド（JOIN結果）
type CartItemView struct {
	ID               int64           `gorm:"column:cart_item_id" json:"cartItemId"`
	Price            decimal.Decimal `gorm:"column:price" json:"price"`
	ProductID        int64           `gorm:"column:product_id" json:"productId"`
	Image            string          `gorm:"column:image" json:"image"`
	Name             string          `gorm:"column:name" json:"name"`
	ShortDescription string          `gorm:"column:short_description" json:"shortDescription"`
}
