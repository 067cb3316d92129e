package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therafiali/woocommerce-storefront/cart"
	"github.com/therafiali/woocommerce-storefront/checkout"
	"github.com/therafiali/woocommerce-storefront/config"
	"github.com/therafiali/woocommerce-storefront/controllers/notify"
	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/session"
	"github.com/therafiali/woocommerce-storefront/wc"
)

func testRouter(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := wc.NewClient(config.Config{SiteURL: srv.URL, ConsumerKey: "ck", ConsumerSecret: "cs"})
	manager := session.NewManager(cart.NewMemoryStorage(), "AU")
	svc := checkout.NewService(client, "AU")

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("session_id", "guest_test") })
	r.GET("/store/customer", GetCustomer(manager))
	r.PUT("/store/customer", UpdateCustomer(manager))
	r.POST("/store/checkout", Checkout(svc, manager, notify.NewHub()))
	return r, manager
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutEmptyCartReturns400(t *testing.T) {
	called := false
	r, _ := testRouter(t, func(w http.ResponseWriter, req *http.Request) { called = true })

	w := do(r, http.MethodPost, "/store/checkout", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called, "no order call may reach the backend")
}

func TestCustomerDraftRoundTrip(t *testing.T) {
	r, manager := testRouter(t, func(w http.ResponseWriter, req *http.Request) {})

	w := do(r, http.MethodPut, "/store/customer", `{"first_name":"Jane","email":"jane@x.com","country":"AU"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Jane", manager.Get("guest_test").Customer().FirstName)

	w = do(r, http.MethodGet, "/store/customer", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info models.CustomerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "jane@x.com", info.Email)
}

func TestCheckoutSuccess(t *testing.T) {
	r, manager := testRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"total":"25.00"}`))
	})

	sess := manager.Get("guest_test")
	sess.Cart.AddItem(models.Product{ID: 1, Name: "mug", Price: "10.00"})
	sess.SetCustomer(models.CustomerInfo{FirstName: "Jane", Email: "jane@x.com"})

	w := do(r, http.MethodPost, "/store/checkout", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var result checkout.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, uint(42), result.Order.ID)
	assert.Equal(t, 3000, result.HideAfterMS)

	assert.Empty(t, sess.Cart.Items())
}

func TestCheckoutBackendRejectionReturns502(t *testing.T) {
	r, manager := testRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Sorry, this product cannot be purchased"}`))
	})

	sess := manager.Get("guest_test")
	sess.Cart.AddItem(models.Product{ID: 1, Name: "mug", Price: "10.00"})
	sess.SetCustomer(models.CustomerInfo{FirstName: "Jane", Email: "jane@x.com"})

	w := do(r, http.MethodPost, "/store/checkout", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be purchased")

	assert.Len(t, sess.Cart.Items(), 1, "cart survives the failure")
}
