package model

import "time"

// 注文。作成後は変更しない。
// CreditCardは検証せずそのまま保存する。
type Order struct {
	ID              int64     `gorm:"column:order_id;primaryKey;autoIncrement" json:"orderId"`
	CartID          int64     `gorm:"not null;index" json:"cartId"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	CreditCard      string    `gorm:"type:text;not null" json:"creditCard"`
	ShippingAddress string    `gorm:"type:text;not null" json:"shippingAddress"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

func (Order) TableName() string { return "orders" }
