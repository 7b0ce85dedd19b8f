package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/models"
)

// PUT /user/shipping
//
// Overwrites the user's saved shipping info. Persisted on the user row, so
// it survives cart mutations and logout independently.
func SaveShippingInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping info: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"ship_street":      addr.Street,
			"ship_city":        addr.City,
			"ship_postal_code": addr.PostalCode,
			"ship_phone":       addr.Phone,
			"ship_country":     addr.Country,
		}
		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipping info"})
			return
		}

		c.JSON(http.StatusOK, addr)
	}
}

// GET /user/shipping
func GetShippingInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user.Address)
	}
}
