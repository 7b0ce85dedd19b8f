package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/checkout"
	cartControllers "github.com/intronerd12/Nourishy-sub000/controllers/cart"
	checkoutControllers "github.com/intronerd12/Nourishy-sub000/controllers/checkout"
	reviewControllers "github.com/intronerd12/Nourishy-sub000/controllers/review"
	userControllers "github.com/intronerd12/Nourishy-sub000/controllers/user"
	"github.com/intronerd12/Nourishy-sub000/middleware"
)

// SetupUserRoutes registers all JWT-protected storefront endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, sessions *checkout.Store, lock *middleware.EntityLock) {
	// ──────────────── Profile ────────────────
	me := r.Group("/me")
	me.Use(middleware.ValidateToken)
	{
		me.GET("", userControllers.GetUser(db))
		me.PUT("", userControllers.UpdateUser(db))
	}

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))
			cartGroup.POST("", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Shipping Info ────────────────
		userGroup.GET("/shipping", cartControllers.GetShippingInfo(db))
		userGroup.PUT("/shipping", cartControllers.SaveShippingInfo(db))

		// ──────────────── Checkout Wizard ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.POST("/start", checkoutControllers.StartCheckout(db, sessions))
			checkoutGroup.GET("/session", checkoutControllers.GetSession(sessions))
			checkoutGroup.POST("/customer", checkoutControllers.SubmitCustomerInfo(sessions))
			checkoutGroup.POST("/delivery", checkoutControllers.SubmitDelivery(db, sessions))
			checkoutGroup.POST("/payment", checkoutControllers.SelectPayment(sessions))
			checkoutGroup.POST("/back", checkoutControllers.StepBack(sessions))
			checkoutGroup.POST("/confirm",
				lock.Guard("checkout", ""),
				checkoutControllers.ConfirmOrder(db, sessions),
			)
		}

		// ──────────────── Reviews ────────────────
		userGroup.PUT("/review", reviewControllers.UpsertReview(db))
	}
}
