package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

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

// newTestRouter mounts the cart routes behind a stub that authenticates
// every request as userID.
func newTestRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/user/cart", GetUserCart(db))
	r.POST("/user/cart", UpdateCartItem(db))
	r.DELETE("/user/cart/:product_id", DeleteCartItem(db))
	r.DELETE("/user/cart", ClearUserCart(db))
	r.PUT("/user/shipping", SaveShippingInfo(db))
	r.GET("/user/shipping", GetShippingInfo(db))
	return r
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		ID:    id,
		Email: id + "@example.com",
		Cart:  models.Cart{UserID: id},
	}).Error)
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Category: "Shampoo", Price: price, Stock: stock}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func addItem(t *testing.T, r *gin.Engine, productID uint, qty int) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(CartItemInput{ProductID: productID, Quantity: qty})
	req := httptest.NewRequest(http.MethodPost, "/user/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cartItems(t *testing.T, db *gorm.DB, userID string) []models.CartItem {
	t.Helper()
	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error)
	return cart.Items
}

func TestAddItemCreatesSingleEntry(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p := seedProduct(t, db, "Argan Shampoo", 120, 10)
	r := newTestRouter(db, "u1")

	w := addItem(t, r, p.ID, 2)
	assert.Equal(t, http.StatusCreated, w.Code)

	items := cartItems(t, db, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 120.0, items[0].ProductPrice)
}

func TestRepeatedAddReplacesQuantityNoDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p := seedProduct(t, db, "Argan Shampoo", 120, 10)
	r := newTestRouter(db, "u1")

	addItem(t, r, p.ID, 2)
	addItem(t, r, p.ID, 5)
	w := addItem(t, r, p.ID, 3)
	assert.Equal(t, http.StatusOK, w.Code)

	items := cartItems(t, db, "u1")
	require.Len(t, items, 1, "exactly one entry per product id")
	assert.Equal(t, 3, items[0].Quantity, "last quantity wins")
}

func TestQuantityClampedToStock(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p := seedProduct(t, db, "Silk Conditioner", 80, 4)
	r := newTestRouter(db, "u1")

	addItem(t, r, p.ID, 99)

	items := cartItems(t, db, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestOutOfStockRejected(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p := seedProduct(t, db, "Sold Out Oil", 200, 0)
	r := newTestRouter(db, "u1")

	w := addItem(t, r, p.ID, 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, cartItems(t, db, "u1"))
}

func TestUnknownProductRejected(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	r := newTestRouter(db, "u1")

	w := addItem(t, r, 999, 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p := seedProduct(t, db, "Argan Shampoo", 120, 10)
	r := newTestRouter(db, "u1")
	addItem(t, r, p.ID, 1)

	url := fmt.Sprintf("/user/cart/%d", p.ID)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "delete #%d", i+1)
	}
	assert.Empty(t, cartItems(t, db, "u1"))
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	p := seedProduct(t, db, "Argan Shampoo", 120, 10)

	addItem(t, newTestRouter(db, "u1"), p.ID, 2)

	assert.Len(t, cartItems(t, db, "u1"), 1)
	assert.Empty(t, cartItems(t, db, "u2"), "distinct accounts must not share carts")
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p1 := seedProduct(t, db, "Argan Shampoo", 120, 10)
	p2 := seedProduct(t, db, "Silk Conditioner", 80, 10)
	r := newTestRouter(db, "u1")
	addItem(t, r, p1.ID, 1)
	addItem(t, r, p2.ID, 1)

	req := httptest.NewRequest(http.MethodDelete, "/user/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, db, "u1"))
}

func TestSaveAndGetShippingInfo(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	r := newTestRouter(db, "u1")

	addr := models.Address{Street: "12 Palm St", City: "Dubai", PostalCode: "00000", Phone: "0501234567", Country: "AE"}
	body, _ := json.Marshal(addr)
	req := httptest.NewRequest(http.MethodPut, "/user/shipping", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/user/shipping", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, addr, got)
}

func TestShippingSurvivesCartClear(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	p := seedProduct(t, db, "Argan Shampoo", 120, 10)
	r := newTestRouter(db, "u1")

	addr := models.Address{Street: "12 Palm St", City: "Dubai", PostalCode: "00000", Country: "AE"}
	body, _ := json.Marshal(addr)
	req := httptest.NewRequest(http.MethodPut, "/user/shipping", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	addItem(t, r, p.ID, 1)
	req = httptest.NewRequest(http.MethodDelete, "/user/cart", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, "12 Palm St", user.Address.Street)
}
