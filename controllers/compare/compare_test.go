package compareControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() (*gin.Engine, *stores.Compare) {
	gin.SetMode(gin.TestMode)
	cat := catalog.New([]models.Product{
		{ID: "p1", Slug: "one"},
		{ID: "p2", Slug: "two"},
		{ID: "p3", Slug: "three"},
		{ID: "p4", Slug: "four"},
	}, nil)
	compare := stores.NewCompare(stores.NewMemorySlots(), nil)

	r := gin.New()
	r.POST("/user/compare", AddCompareItem(cat, compare))
	r.DELETE("/user/compare/:product_id", DeleteCompareItem(compare))
	return r, compare
}

func addProduct(t *testing.T, r *gin.Engine, id string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/user/compare", strings.NewReader(`{"product_id":"`+id+`"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAddCompareItemSignalsCapacity(t *testing.T) {
	r, compare := testRouter()

	for _, id := range []string{"p1", "p2", "p3"} {
		require.Equal(t, http.StatusOK, addProduct(t, r, id).Code)
	}

	// A fourth distinct product is an explicit conflict, not a silent drop.
	w := addProduct(t, r, "p4")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, compare.Items(), 3)

	// A duplicate at capacity is still fine.
	assert.Equal(t, http.StatusOK, addProduct(t, r, "p2").Code)
}

func TestDeleteCompareItem(t *testing.T) {
	r, compare := testRouter()
	addProduct(t, r, "p1")

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodDelete, "/user/compare/p1", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, compare.Items())
}
