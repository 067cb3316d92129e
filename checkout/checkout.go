package checkout

import (
	"fmt"
	"time"

	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/session"
)

// ValidationError reports a failed local precondition. No network call was
// made when one of these comes back.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// OrderCreator is the slice of the WooCommerce client checkout needs.
type OrderCreator interface {
	CreateOrder(req models.OrderRequest) (models.Order, error)
}

// cartHideDelayMS tells the storefront how long to keep the cart view open
// after a successful order. Purely a display hint.
const cartHideDelayMS = 3000

// Service turns a session's cart and customer draft into a WooCommerce order.
type Service struct {
	client  OrderCreator
	country string
}

func NewService(client OrderCreator, country string) *Service {
	return &Service{client: client, country: country}
}

// Result carries what the storefront shows after a successful checkout.
type Result struct {
	Order       models.Order `json:"order"`
	Message     string       `json:"message"`
	HideAfterMS int          `json:"hide_after_ms"`
}

// Submit validates the session state, places the order, and on success clears
// the cart and resets the customer draft. On any failure both are left
// untouched so the shopper can retry without re-entering data.
func (s *Service) Submit(sess *session.Session) (Result, error) {
	items := sess.Cart.Items()
	if len(items) == 0 {
		return Result{}, &ValidationError{Reason: "Cart is empty!"}
	}

	info := sess.Customer()
	if info.FirstName == "" || info.Email == "" {
		return Result{}, &ValidationError{Reason: "Customer first name and email are required"}
	}

	lineItems := make([]models.OrderLineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	req := models.OrderRequest{
		PaymentMethod:      "bacs",
		PaymentMethodTitle: "Direct Bank Transfer",
		SetPaid:            false,
		Billing:            info,
		Shipping:           info,
		LineItems:          lineItems,
		CustomerNote:       "Order created from storefront gateway on " + time.Now().Format("2006-01-02 15:04:05"),
	}

	order, err := s.client.CreateOrder(req)
	if err != nil {
		return Result{}, err
	}

	sess.Cart.Clear()
	sess.ResetCustomer(s.country)

	return Result{
		Order:       order,
		Message:     fmt.Sprintf("Order #%d created successfully! Total: $%s", order.ID, order.Total),
		HideAfterMS: cartHideDelayMS,
	}, nil
}
