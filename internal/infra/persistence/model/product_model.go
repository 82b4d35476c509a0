package model

import (
	"time"

	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Label     string `gorm:"type:varchar(255);not null"`
	Qty       int    `gorm:"not null;default:0;check:chk_products_qty,qty >= 0"`
	Price     int    `gorm:"not null;default:0"`
	Size      int    `gorm:"not null;default:0"`
	Detail    string `gorm:"type:text;not null"`
	Category  string `gorm:"type:text;not null"`
	Image     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Carts               []*CartModel               `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Ratings             []*RatingModel             `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	ProductTransactions []*ProductTransactionModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
