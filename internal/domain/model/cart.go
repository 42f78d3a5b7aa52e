package model

import "time"

// 明細をまとめるだけの入れ物。セッションから参照される。
type Cart struct {
	ID        int64     `gorm:"column:cart_id;primaryKey;autoIncrement" json:"cartId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

func (Cart) TableName() string { return "carts" }
