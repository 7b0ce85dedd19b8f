package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/intronerd12/Nourishy-sub000/controllers/order"
	"github.com/intronerd12/Nourishy-sub000/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, lock *middleware.EntityLock) {
	orders := r.Group("/")
	orders.Use(middleware.ValidateToken)
	{
		// Direct order creation shares the checkout guard key so rapid
		// repeated submissions of the same cart collapse to one order
		orders.POST("/order/new", lock.Guard("checkout", ""), orderControllers.PlaceOrderHandler(db))

		// Caller's order history
		orders.GET("/orders/me", orderControllers.GetMyOrdersHandler(db))

		// Single order by id or order ref (owner or admin)
		orders.GET("/order/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
