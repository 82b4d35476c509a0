package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. Password never leaves the repository layer.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255);not null"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone         string `gorm:"type:varchar(255);not null"`
	Password      string `gorm:"type:varchar(255);not null"`
	RememberToken string `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Addresses    []*AddressModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Carts        []*CartModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Transactions []*TransactionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Ratings      []*RatingModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
