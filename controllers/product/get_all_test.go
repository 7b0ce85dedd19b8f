package productcontroller

import (
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
		&models.Product{}, &models.ProductImage{}, &models.Review{},
	))
	return db
}

func newCatalogRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/product/:id", GetProductByID(db))
	return r
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name:     fmt.Sprintf("Argan Shampoo %02d", i+1),
			Category: "Shampoo",
			Price:    float64(100 + i*100),
			Stock:    5,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Product{
		Name: "Silk Conditioner", Category: "Conditioner", Price: 300, Stock: 5,
	}).Error)
}

type listResponse struct {
	Products      []models.Product `json:"products"`
	FilteredCount int              `json:"filtered_count"`
	TotalCount    int              `json:"total_count"`
	Page          int              `json:"page"`
}

func list(t *testing.T, r *gin.Engine, query string) (listResponse, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp listResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

func TestListDefaultsToTwelvePerPage(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	resp, w := list(t, r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Products, 12)
	assert.Equal(t, 16, resp.FilteredCount)
	assert.Equal(t, 16, resp.TotalCount)

	resp, _ = list(t, r, "?page=2")
	assert.Len(t, resp.Products, 4)

	resp, _ = list(t, r, "?page=3")
	assert.Empty(t, resp.Products)
}

func TestListFilterAndSort(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	resp, w := list(t, r, "?category=Shampoo&price_max=500&sort=price-low")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5, resp.FilteredCount)
	prev := 0.0
	for _, p := range resp.Products {
		assert.Equal(t, "Shampoo", p.Category)
		assert.LessOrEqual(t, p.Price, 500.0)
		assert.GreaterOrEqual(t, p.Price, prev)
		prev = p.Price
	}
}

func TestListRejectsBadParams(t *testing.T) {
	db := newTestDB(t)
	r := newCatalogRouter(db)

	_, w := list(t, r, "?price_max=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, w = list(t, r, "?page=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, w = list(t, r, "?page_size=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductByID(t *testing.T) {
	db := newTestDB(t)
	p := models.Product{Name: "Argan Shampoo", Category: "Shampoo", Price: 120, Stock: 5}
	require.NoError(t, db.Create(&p).Error)
	r := newCatalogRouter(db)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/product/%d", p.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, p.Name, got.Name)

	req = httptest.NewRequest(http.MethodGet, "/product/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
