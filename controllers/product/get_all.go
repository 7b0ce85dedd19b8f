package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/catalog"
	"github.com/intronerd12/Nourishy-sub000/models"
)

// GET /products
//
// Fetches the full catalog and runs it through the filter/sort/paginate
// pipeline. Query params: category, search, price_max, min_rating,
// only_reviewed, sort, page, page_size.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			SortKey:  catalog.SortKey(c.Query("sort")),
		}

		if v := c.Query("price_max"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_max"})
				return
			}
			filter.PriceMax = f
		}
		if v := c.Query("min_rating"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
				return
			}
			filter.MinRating = f
		}
		filter.OnlyReviewed = c.Query("only_reviewed") == "true"

		page := 1
		if v := c.Query("page"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil || p < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			page = p
		}
		pageSize := catalog.DefaultPageSize
		if v := c.Query("page_size"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size"})
				return
			}
			pageSize = n
		}

		var products []models.Product
		if err := db.Preload("Images").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := catalog.Apply(products, filter)

		c.JSON(http.StatusOK, gin.H{
			"products":       catalog.Page(filtered, page, pageSize),
			"filtered_count": len(filtered),
			"total_count":    len(products),
			"page":           page,
			"page_size":      pageSize,
		})
	}
}
