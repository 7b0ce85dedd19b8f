package models

import "time"

// Review is unique per (product, user); a second review from the same user
// updates the existing row in place.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index:idx_review_product_user,unique" json:"product_id"`
	UserID    string    `gorm:"index:idx_review_product_user,unique" json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
