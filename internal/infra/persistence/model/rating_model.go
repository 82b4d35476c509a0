package model

import (
	"time"

	"gorm.io/gorm"
)

// RatingModel mirrors the 'ratings' table. Rows start as stubs created at
// transaction completion and become ratings once scored.
type RatingModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	UserID        int64 `gorm:"not null;index"`
	ProductID     int64 `gorm:"not null;index"`
	TransactionID int64 `gorm:"not null;index"`
	Rating        int   `gorm:"not null;default:0"`
	IsRating      bool  `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	User        *UserModel        `gorm:"foreignKey:UserID"`
	Product     *ProductModel     `gorm:"foreignKey:ProductID"`
	Transaction *TransactionModel `gorm:"foreignKey:TransactionID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// All returns every model in dependency order, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&ProductModel{},
		&CartModel{},
		&TransactionModel{},
		&ProductTransactionModel{},
		&RatingModel{},
	}
}
