package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/checkout"
	"github.com/intronerd12/Nourishy-sub000/middleware"
)

// SetupRoutes is the single entry-point that wires up the public, user, and
// admin route groups. The checkout session store and the per-entity
// mutation lock are constructed once in main and injected here.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *checkout.Store, lock *middleware.EntityLock) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupStorefrontRoutes(r, db)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db, sessions, lock)

	// 3️⃣ Order routes (JWT-protected)
	SetupOrderRoutes(r, db, lock)

	// 4️⃣ Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, db, lock)
}
