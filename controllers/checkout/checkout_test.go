package checkoutControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/checkout"
	"github.com/intronerd12/Nourishy-sub000/middleware"
	"github.com/intronerd12/Nourishy-sub000/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.ProductImage{}, &models.Review{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func newWizardRouter(db *gorm.DB, store *checkout.Store, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lock := middleware.NewEntityLock()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	g := r.Group("/user/checkout")
	g.POST("/start", StartCheckout(db, store))
	g.GET("/session", GetSession(store))
	g.POST("/customer", SubmitCustomerInfo(store))
	g.POST("/delivery", SubmitDelivery(db, store))
	g.POST("/payment", SelectPayment(store))
	g.POST("/back", StepBack(store))
	g.POST("/confirm", lock.Guard("checkout", ""), ConfirmOrder(db, store))
	return r
}

func post(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedBuyer(t *testing.T, db *gorm.DB, userID string, withItems bool) {
	t.Helper()
	cart := models.Cart{UserID: userID}
	if withItems {
		p := models.Product{Name: "Argan Shampoo", Category: "Shampoo", Price: 120, Stock: 10}
		require.NoError(t, db.Create(&p).Error)
		cart.Items = []models.CartItem{{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			Quantity:     2,
			AddedAt:      time.Now(),
		}}
	}
	require.NoError(t, db.Create(&models.User{
		ID:    userID,
		Email: userID + "@example.com",
		Name:  "Amina",
		Phone: "0501234567",
		Cart:  cart,
	}).Error)
}

func runWizardToPayment(t *testing.T, r *gin.Engine) {
	t.Helper()
	require.Equal(t, http.StatusOK, post(t, r, "/user/checkout/start", nil).Code)
	w := post(t, r, "/user/checkout/customer", checkout.CustomerInfo{
		Name: "Amina", Email: "amina@example.com", Phone: "0501234567",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = post(t, r, "/user/checkout/delivery", models.Address{
		Street: "12 Palm St", City: "Dubai", PostalCode: "00000", Country: "AE",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = post(t, r, "/user/checkout/payment", map[string]string{"payment_method": "card"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestFullWizardFlowPlacesOrder(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	store := checkout.NewStore()
	r := newWizardRouter(db, store, "u1")

	runWizardToPayment(t, r)
	w := post(t, r, "/user/checkout/confirm", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, "12 Palm St", order.ShippingAddress.Street)
	require.Len(t, order.Items, 1)

	// cart drained, session dropped
	var items []models.CartItem
	db.Find(&items)
	assert.Empty(t, items)
	_, err := store.Get("u1")
	assert.Error(t, err)
}

func TestConfirmWithEmptyCart(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", false)
	store := checkout.NewStore()
	r := newWizardRouter(db, store, "u1")

	runWizardToPayment(t, r)
	w := post(t, r, "/user/checkout/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)

	// wizard state untouched so the user can retry
	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StepPayment, sess.Step)
	assert.Equal(t, "card", sess.PaymentMethod)
}

func TestConfirmBeforePaymentStepRejected(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	store := checkout.NewStore()
	r := newWizardRouter(db, store, "u1")

	require.Equal(t, http.StatusOK, post(t, r, "/user/checkout/start", nil).Code)
	w := post(t, r, "/user/checkout/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStepSkipRejectedOverHTTP(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	r := newWizardRouter(db, checkout.NewStore(), "u1")

	require.Equal(t, http.StatusOK, post(t, r, "/user/checkout/start", nil).Code)
	w := post(t, r, "/user/checkout/payment", map[string]string{"payment_method": "card"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestValidationErrorsReportFields(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	r := newWizardRouter(db, checkout.NewStore(), "u1")

	require.Equal(t, http.StatusOK, post(t, r, "/user/checkout/start", nil).Code)
	w := post(t, r, "/user/checkout/customer", checkout.CustomerInfo{Email: "a@b.c"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "phone")
}

func TestStartPrefillsFromProfile(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "u1").
		Update("ship_city", "Dubai").Error)
	r := newWizardRouter(db, checkout.NewStore(), "u1")

	w := post(t, r, "/user/checkout/start", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Session checkout.Session `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Amina", resp.Session.Customer.Name)
	assert.Equal(t, "Dubai", resp.Session.Delivery.City)
}

func TestConcurrentStartAndSessionReads(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	store := checkout.NewStore()
	r := newWizardRouter(db, store, "u1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/user/checkout/start", nil)
			r.ServeHTTP(httptest.NewRecorder(), req)
		}()
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/user/checkout/session", nil)
			r.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StepCart, sess.Step)
	assert.Equal(t, "Amina", sess.Customer.Name)
}

func TestDeliveryPersistFailureStillAdvances(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	store := checkout.NewStore()
	r := newWizardRouter(db, store, "u1")

	require.Equal(t, http.StatusOK, post(t, r, "/user/checkout/start", nil).Code)
	w := post(t, r, "/user/checkout/customer", checkout.CustomerInfo{
		Name: "Amina", Email: "amina@example.com", Phone: "0501234567",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	w = post(t, r, "/user/checkout/delivery", models.Address{
		Street: "12 Palm St", City: "Dubai", PostalCode: "00000", Country: "AE",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StepPayment, sess.Step)
	assert.Equal(t, "12 Palm St", sess.Delivery.Street)
}

func TestDeliveryStepPersistsShippingInfo(t *testing.T) {
	db := newTestDB(t)
	seedBuyer(t, db, "u1", true)
	r := newWizardRouter(db, checkout.NewStore(), "u1")

	runWizardToPayment(t, r)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, "12 Palm St", user.Address.Street)
	assert.Equal(t, "Dubai", user.Address.City)
}
