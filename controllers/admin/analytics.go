package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/models"
)

type topProduct struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"name"`
	Sold        int    `json:"sold"`
}

// GET /admin/analytics
//
// One-shot dashboard payload: revenue, order counts per status, catalog and
// user headcounts, out-of-stock count, and the top sellers by quantity.
func GetAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&totalRevenue).Error; err != nil {
			log.Println("❌ Failed to compute revenue:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
			return
		}

		ordersByStatus := map[string]int64{}
		for _, status := range []models.OrderStatus{
			models.OrderStatusPending,
			models.OrderStatusConfirmed,
			models.OrderStatusDelivered,
			models.OrderStatusCancelled,
		} {
			var n int64
			if err := db.Model(&models.Order{}).Where("status = ?", status).Count(&n).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
				return
			}
			ordersByStatus[string(status)] = n
		}

		var userCount, productCount, outOfStock int64
		db.Model(&models.User{}).Count(&userCount)
		db.Model(&models.Product{}).Count(&productCount)
		db.Model(&models.Product{}).Where("stock <= 0").Count(&outOfStock)

		var top []topProduct
		if err := db.Model(&models.OrderItem{}).
			Select("product_id, product_name, SUM(quantity) AS sold").
			Group("product_id, product_name").
			Order("sold DESC").
			Limit(5).
			Scan(&top).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_revenue":    totalRevenue,
			"orders_by_status": ordersByStatus,
			"user_count":       userCount,
			"product_count":    productCount,
			"out_of_stock":     outOfStock,
			"top_products":     top,
		})
	}
}
