package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/intronerd12/Nourishy-sub000/controllers/admin"
	cartControllers "github.com/intronerd12/Nourishy-sub000/controllers/cart"
	orderControllers "github.com/intronerd12/Nourishy-sub000/controllers/order"
	productcontroller "github.com/intronerd12/Nourishy-sub000/controllers/product"
	reviewControllers "github.com/intronerd12/Nourishy-sub000/controllers/review"
	userControllers "github.com/intronerd12/Nourishy-sub000/controllers/user"
	"github.com/intronerd12/Nourishy-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the admin role. Role/status mutations run behind the per-entity lock.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, lock *middleware.EntityLock) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Analytics ───────────
		adminGroup.GET("/analytics", adminController.GetAnalytics(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
		adminGroup.PUT("/product/:id",
			lock.Guard("product", "id"),
			productcontroller.UpdateProduct(db),
		)
		adminGroup.DELETE("/product/:id", productcontroller.DeleteProduct(db))

		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.PUT("/user/:id",
			lock.Guard("user", "id"),
			userControllers.AdminUpdateUser(db),
		)
		adminGroup.DELETE("/user/:id", userControllers.AdminDeleteUser(db))
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))

		// ─────────── Order Management ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
		adminGroup.GET("/orders/export-excel", adminController.ExportOrdersToExcel(db))
		adminGroup.PUT("/order/:orderID/status",
			lock.Guard("order", "orderID"),
			orderControllers.UpdateOrderStatusHandler(db),
		)
		adminGroup.PUT("/order/:orderID/payment-status",
			lock.Guard("order", "orderID"),
			orderControllers.UpdatePaymentStatusHandler(db),
		)
		adminGroup.DELETE("/order/:orderID", orderControllers.DeleteOrderHandler(db))

		// ─────────── Review Management ───────────
		adminGroup.GET("/reviews", reviewControllers.GetAllReviews(db))
		adminGroup.DELETE("/review/:id",
			lock.Guard("review", "id"),
			reviewControllers.DeleteReview(db),
		)
	}
}
