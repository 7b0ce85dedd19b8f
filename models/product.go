package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	Category     string         `gorm:"index" json:"category"` // e.g. "Shampoo", "Conditioner", "Hair Oil"
	Price        float64        `gorm:"not null" json:"price"`
	Stock        int            `json:"stock"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	Images       []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Ratings      float64        `json:"ratings"` // average of review ratings, recomputed on review mutation
	NumOfReviews int            `json:"num_of_reviews"`
	Reviews      []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
}
