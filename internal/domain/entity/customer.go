package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a store customer. Customers are managed independently
// of sales: walk-up sales stay anonymous and carry no customer reference.
type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50;index" json:"phone"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
