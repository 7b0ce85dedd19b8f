package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                    // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the product at the time it was added; ProductStock is
// the last-known stock used to clamp quantity at add time.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index:idx_cart_product,unique" json:"cart_id"`
	ProductID    uint      `gorm:"index:idx_cart_product,unique" json:"product_id"`
	ProductName  string    `json:"name"`
	ProductImage string    `json:"image"`
	ProductPrice float64   `json:"price"`
	ProductStock int       `json:"stock"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
