package model

import "github.com/shopspring/decimal"

func init() {
	// 価格はJSONでは数値として返す（"19.99"ではなく19.99）
	decimal.MarshalJSONWithoutQuotes = true
}

// 商品はこのサービスからは読み取り専用。
type Product struct {
	ID               int64           `gorm:"column:product_id;primaryKey;autoIncrement" json:"productId"`
	Name             string          `gorm:"type:text;not null" json:"name"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image            string          `gorm:"type:text;not null" json:"image"`
	ShortDescription string          `gorm:"type:text;not null" json:"shortDescription"`
	LongDescription  string          `gorm:"type:text;not null" json:"longDescription"`
}

func (Product) TableName() string { return "products" }

// 一覧用（long_descriptionは含めない）
type ProductSummary struct {
	ID               int64           `gorm:"column:product_id" json:"productId"`
	Name             string          `gorm:"column:name" json:"name"`
	Price            decimal.Decimal `gorm:"column:price" json:"price"`
	Image            string          `gorm:"column:image" json:"image"`
	ShortDescription string          `gorm:"column:short_description" json:"shortDescription"`
}
