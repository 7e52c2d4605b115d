package cartControllers

import (
	"encoding/json"
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

func testRouter() (*gin.Engine, *stores.Cart) {
	gin.SetMode(gin.TestMode)
	cat := catalog.New([]models.Product{
		{ID: "p1", Title: "Walnut Desk Lamp", Slug: "walnut-desk-lamp", Price: 10, Images: []string{"lamp.jpg"}},
	}, nil)
	cart := stores.NewCart(stores.NewMemorySlots(), nil)

	r := gin.New()
	r.GET("/user/cart", GetCart(cart))
	r.POST("/user/cart", AddCartItem(cat, cart))
	r.PUT("/user/cart/:line_id", UpdateCartItemQty(cart))
	r.DELETE("/user/cart/:line_id", DeleteCartItem(cart))
	r.DELETE("/user/cart", ClearCart(cart))
	return r, cart
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, path, nil)
	} else {
		req, err = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemSnapshotsProduct(t *testing.T) {
	r, cart := testRouter()

	w := do(t, r, http.MethodPost, "/user/cart", `{"product_id":"p1","qty":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var line models.CartLineItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
	assert.Equal(t, "p1", line.ProductID)
	assert.Equal(t, "Walnut Desk Lamp", line.Title)
	assert.Equal(t, "lamp.jpg", line.Image)
	assert.Equal(t, 2, line.Qty)

	assert.Equal(t, 20.0, cart.Subtotal())
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r, _ := testRouter()
	w := do(t, r, http.MethodPost, "/user/cart", `{"product_id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartIncludesTotals(t *testing.T) {
	r, _ := testRouter()
	do(t, r, http.MethodPost, "/user/cart", `{"product_id":"p1","qty":1}`)

	w := do(t, r, http.MethodGet, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items    []models.CartLineItem `json:"items"`
		Subtotal float64               `json:"subtotal"`
		Tax      float64               `json:"tax"`
		Total    float64               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Items, 1)
	assert.InDelta(t, 10.0, body.Subtotal, 1e-9)
	assert.InDelta(t, 1.0, body.Tax, 1e-9)
	assert.InDelta(t, 11.0, body.Total, 1e-9)
}

func TestUpdateQtyZeroRemovesLine(t *testing.T) {
	r, cart := testRouter()
	line := cart.AddItem(stores.CartLineBase{ProductID: "p1", Price: 10}, 1)

	w := do(t, r, http.MethodPut, "/user/cart/"+line.ID, `{"qty":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items())
}

func TestClearCart(t *testing.T) {
	r, cart := testRouter()
	cart.AddItem(stores.CartLineBase{ProductID: "p1", Price: 10}, 1)

	w := do(t, r, http.MethodDelete, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items())
}
