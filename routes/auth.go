package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/auth"
	productcontroller "github.com/intronerd12/Nourishy-sub000/controllers/product"
	reviewControllers "github.com/intronerd12/Nourishy-sub000/controllers/review"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/register", auth.RegisterHandler(db))
	}
}

// SetupStorefrontRoutes registers the unauthenticated catalog endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/product/:id", productcontroller.GetProductByID(db))
	r.GET("/reviews", reviewControllers.GetProductReviews(db))
}
