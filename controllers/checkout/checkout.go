package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/checkout"
	orderControllers "github.com/intronerd12/Nourishy-sub000/controllers/order"
	"github.com/intronerd12/Nourishy-sub000/models"
)

// stepError maps state-machine errors onto responses: validation failures
// carry per-field messages, step violations are 409, a missing session 404.
func stepError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, checkout.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrWrongStep), errors.Is(err, checkout.ErrNotConfirmable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func sessionUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// POST /user/checkout/start
//
// Opens the wizard at the cart step and returns the priced cart. Prefills
// customer and delivery fields from the saved profile so a returning buyer
// only reviews them.
func StartCheckout(db *gorm.DB, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		sess := store.Start(userID)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			prefilled, err := store.Prefill(userID, checkout.CustomerInfo{
				Name: user.Name, Email: user.Email, Phone: user.Phone,
			}, user.Address)
			if err == nil {
				sess = prefilled
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"session": sess,
			"items":   cart.Items,
			"totals":  checkout.PriceCart(cart.Items),
		})
	}
}

// GET /user/checkout/session
func GetSession(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		sess, err := store.Get(userID)
		if err != nil {
			stepError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// POST /user/checkout/customer
func SubmitCustomerInfo(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		var info checkout.CustomerInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sess, err := store.SubmitCustomerInfo(userID, info)
		if err != nil {
			stepError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// POST /user/checkout/delivery
//
// Advancing past delivery also persists the address as the user's saved
// shipping info.
func SubmitDelivery(db *gorm.DB, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sess, err := store.SubmitDelivery(userID, addr)
		if err != nil {
			stepError(c, err)
			return
		}

		// The wizard still advances when the persist fails; the address
		// lives on the session and only the saved profile goes stale.
		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"ship_street":      addr.Street,
			"ship_city":        addr.City,
			"ship_postal_code": addr.PostalCode,
			"ship_phone":       addr.Phone,
			"ship_country":     addr.Country,
		}).Error; err != nil {
			log.Printf("❌ Failed to save shipping info for %s: %v", userID, err)
		}

		c.JSON(http.StatusOK, sess)
	}
}

// POST /user/checkout/payment
func SelectPayment(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		var req struct {
			PaymentMethod string `json:"payment_method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sess, err := store.SelectPayment(userID, req.PaymentMethod)
		if err != nil {
			stepError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// POST /user/checkout/back
func StepBack(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		sess, err := store.Back(userID)
		if err != nil {
			stepError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// POST /user/checkout/confirm
//
// Terminal action: re-validates the whole session, requires a non-empty
// cart, places the order, and only then drops the session. On any failure
// the session is untouched so the user can retry without re-entering data.
func ConfirmOrder(db *gorm.DB, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}

		sess, err := store.Confirmable(userID)
		if err != nil {
			stepError(c, err)
			return
		}

		order, err := orderControllers.PlaceOrder(db, orderControllers.PlaceOrderRequest{
			UserID:          userID,
			ShippingAddress: sess.Delivery,
			PaymentMethod:   sess.PaymentMethod,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store.Finish(userID)
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}
