package checkout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therafiali/woocommerce-storefront/cart"
	"github.com/therafiali/woocommerce-storefront/checkout"
	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/session"
	"github.com/therafiali/woocommerce-storefront/wc"
)

type fakeOrders struct {
	calls []models.OrderRequest
	order models.Order
	err   error
}

func (f *fakeOrders) CreateOrder(req models.OrderRequest) (models.Order, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return models.Order{}, f.err
	}
	return f.order, nil
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.NewManager(cart.NewMemoryStorage(), "AU").New()
}

func addProduct(sess *session.Session, id uint, name, price string, quantity int) {
	sess.Cart.AddItem(models.Product{ID: id, Name: name, Price: price})
	if quantity > 1 {
		sess.Cart.SetQuantity(id, quantity)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	orders := &fakeOrders{}
	svc := checkout.NewService(orders, "AU")
	sess := newSession(t)
	sess.SetCustomer(models.CustomerInfo{FirstName: "Jane", Email: "jane@x.com"})

	_, err := svc.Submit(sess)
	require.Error(t, err)

	var validationErr *checkout.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Empty(t, orders.calls, "no network call may happen on validation failure")
}

func TestSubmitMissingCustomerFields(t *testing.T) {
	tests := []struct {
		name     string
		customer models.CustomerInfo
	}{
		{"missing both", models.CustomerInfo{}},
		{"missing email", models.CustomerInfo{FirstName: "Jane"}},
		{"missing first name", models.CustomerInfo{Email: "jane@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &fakeOrders{}
			svc := checkout.NewService(orders, "AU")
			sess := newSession(t)
			addProduct(sess, 1, "mug", "10.00", 1)
			sess.SetCustomer(tt.customer)

			_, err := svc.Submit(sess)

			var validationErr *checkout.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Empty(t, orders.calls)
			assert.Len(t, sess.Cart.Items(), 1, "cart must survive a validation failure")
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	orders := &fakeOrders{order: models.Order{ID: 42, Total: "25.00"}}
	svc := checkout.NewService(orders, "AU")
	sess := newSession(t)
	addProduct(sess, 1, "mug", "10.00", 2)
	addProduct(sess, 2, "plate", "5.00", 1)
	customer := models.CustomerInfo{FirstName: "Jane", Email: "jane@x.com", City: "Sydney", Country: "AU"}
	sess.SetCustomer(customer)

	result, err := svc.Submit(sess)
	require.NoError(t, err)

	require.Len(t, orders.calls, 1)
	req := orders.calls[0]
	assert.Equal(t, "bacs", req.PaymentMethod)
	assert.Equal(t, "Direct Bank Transfer", req.PaymentMethodTitle)
	assert.False(t, req.SetPaid)
	assert.Equal(t, customer, req.Billing)
	assert.Equal(t, customer, req.Shipping)
	assert.Equal(t, []models.OrderLineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, req.LineItems)

	assert.Equal(t, uint(42), result.Order.ID)
	assert.Contains(t, result.Message, "#42")
	assert.Contains(t, result.Message, "25.00")
	assert.Equal(t, 3000, result.HideAfterMS)

	assert.Empty(t, sess.Cart.Items(), "cart clears after a confirmed order")
	assert.Equal(t, models.DefaultCustomerInfo("AU"), sess.Customer(), "customer draft resets to defaults")
}

func TestSubmitAPIFailureLeavesStateUntouched(t *testing.T) {
	orders := &fakeOrders{err: &wc.APIError{StatusCode: 400, Message: "No payment method provided"}}
	svc := checkout.NewService(orders, "AU")
	sess := newSession(t)
	addProduct(sess, 1, "mug", "10.00", 2)
	customer := models.CustomerInfo{FirstName: "Jane", Email: "jane@x.com"}
	sess.SetCustomer(customer)

	_, err := svc.Submit(sess)
	require.Error(t, err)

	var apiErr *wc.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "No payment method provided", apiErr.Error())

	assert.Len(t, sess.Cart.Items(), 1, "cart survives a failed submission")
	assert.Equal(t, customer, sess.Customer(), "customer draft survives a failed submission")
}
