package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID              string    `gorm:"primaryKey" json:"id"` // identity-provider UID
	Email           string    `gorm:"unique;not null" json:"email"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Avatar          string    `json:"avatar"`
	Provider        string    `json:"provider"`
	Role            Role      `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	IsEmailVerified bool      `gorm:"default:false" json:"is_email_verified"`
	Address         Address   `gorm:"embedded;embeddedPrefix:ship_" json:"address"` // saved shipping info, independent of the cart
	Cart            Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders          []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt       time.Time `json:"created_at"`
}

// Address is the shipping info singleton embedded in User.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
}
