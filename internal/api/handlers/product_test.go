package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/logger"
	"storeops/internal/store"
)

type fakeProductStore struct {
	products []store.ProductRef
	details  *store.ProductDetails
	err      error

	deleted []int64
}

func (f *fakeProductStore) CreateProduct(title, description string) (*goshopify.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &goshopify.Product{ID: 1, Title: title, BodyHTML: description}, nil
}

func (f *fakeProductStore) GetProduct(identifier string) (*store.ProductDetails, error) {
	return f.details, f.err
}

func (f *fakeProductStore) GetAllProducts() ([]store.ProductRef, error) {
	return f.products, f.err
}

func (f *fakeProductStore) SearchProductsByTitle(query string) ([]store.ProductRef, error) {
	return f.products, f.err
}

func (f *fakeProductStore) UpdateProduct(id int64, input store.UpdateProductInput) (*store.ProductDetails, error) {
	return f.details, f.err
}

func (f *fakeProductStore) DeleteProduct(id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func productRouter(fake *fakeProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(fake, logger.New("error"))

	r := gin.New()
	r.GET("/products", h.List)
	r.GET("/products/search", h.Search)
	r.GET("/products/:id", h.Get)
	r.POST("/products", h.Create)
	r.DELETE("/products/:id", h.Delete)
	return r
}

func TestProductList(t *testing.T) {
	r := productRouter(&fakeProductStore{products: []store.ProductRef{
		{ID: 1, Title: "Summer Tee"},
	}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Summer Tee")
}

func TestProductGetNotFound(t *testing.T) {
	r := productRouter(&fakeProductStore{err: store.ErrNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductGetRemoteFailureIsBadGateway(t *testing.T) {
	r := productRouter(&fakeProductStore{err: assert.AnError})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/999", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProductCreateValidatesBody(t *testing.T) {
	r := productRouter(&fakeProductStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"description": "no title"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductCreate(t *testing.T) {
	r := productRouter(&fakeProductStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title": "Summer Tee"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Summer Tee")
}

func TestProductSearchRequiresQuery(t *testing.T) {
	r := productRouter(&fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductDelete(t *testing.T) {
	fake := &fakeProductStore{}
	r := productRouter(fake)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/42", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []int64{42}, fake.deleted)
}

func TestProductDeleteRejectsNonNumericID(t *testing.T) {
	r := productRouter(&fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/summer-tee", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
