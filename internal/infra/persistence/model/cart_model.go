package model

import (
	"time"

	"gorm.io/gorm"
)

// CartModel mirrors the 'carts' table.
type CartModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	UserID     int64 `gorm:"not null;index:idx_carts_user_product"`
	ProductID  int64 `gorm:"not null;index:idx_carts_user_product"`
	ProductQty int   `gorm:"not null"`
	IsChecked  bool  `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
