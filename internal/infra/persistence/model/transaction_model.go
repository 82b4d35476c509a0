package model

import (
	"time"
)

// TransactionModel mirrors the 'transactions' table (the checkout header).
type TransactionModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	UserID           int64  `gorm:"not null;index"`
	AddressID        int64  `gorm:"not null;index"`
	QtyTransaction   int    `gorm:"not null"`
	SubtotalProducts int    `gorm:"not null"`
	TotalPrice       int    `gorm:"not null"`
	ShippingCost     int    `gorm:"not null"`
	Status           string `gorm:"type:varchar(32);not null;default:inprogress"`
	InvoiceNumber    string `gorm:"type:varchar(64);not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User                *UserModel                 `gorm:"foreignKey:UserID"`
	Address             *AddressModel              `gorm:"foreignKey:AddressID"`
	ProductTransactions []*ProductTransactionModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	Ratings             []*RatingModel             `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ProductTransactionModel mirrors the 'product_transactions' table (line items).
type ProductTransactionModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	TransactionID int64 `gorm:"not null;index"`
	ProductID     int64 `gorm:"not null;index"`
	ProductQty    int   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Transaction *TransactionModel `gorm:"foreignKey:TransactionID"`
	Product     *ProductModel     `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductTransactionModel) TableName() string {
	return "product_transactions"
}
