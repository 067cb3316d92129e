package remotecart

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/wc"
)

// ErrInFlight rejects a second add while one is still outstanding for the
// same product.
var ErrInFlight = errors.New("an add is already in progress for this product")

// CartAPI is the slice of the WooCommerce client the cascade needs.
type CartAPI interface {
	CartAddItem(productID uint, quantity int, pricing wc.CartItemPricing) (wc.CartAddResponse, error)
	GetProduct(id uint) (models.Product, error)
	AddToCartURL(productID uint, quantity int) string
}

// Strategy names reported in results.
const (
	StrategyCoCart        = "cocart"
	StrategyCatalogLookup = "catalog-redirect"
	StrategyRedirect      = "redirect"
)

// Result reports which strategy got the product into the remote cart and the
// pricing shown to the shopper. ItemCount is set only when the remote
// endpoint actually reported a cart size. RedirectURL, when set, must be
// opened by the caller in a new browsing context.
type Result struct {
	Strategy      string  `json:"strategy"`
	Message       string  `json:"message"`
	OriginalPrice float64 `json:"original_price"`
	ExtraCharge   float64 `json:"extra_charge"`
	FinalPrice    float64 `json:"final_price"`
	ItemCount     *int    `json:"item_count,omitempty"`
	RedirectURL   string  `json:"redirect_url,omitempty"`
}

// Service pushes single products into the remote WooCommerce cart, applying
// the configured surcharge on top of the catalog price. It never touches the
// local cart store.
type Service struct {
	api CartAPI

	mu       sync.Mutex
	extra    float64
	inFlight map[uint]struct{}
}

func NewService(api CartAPI, extraCharge float64) *Service {
	return &Service{
		api:      api,
		extra:    extraCharge,
		inFlight: make(map[uint]struct{}),
	}
}

// ExtraCharge returns the current process-wide surcharge.
func (s *Service) ExtraCharge() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extra
}

// SetExtraCharge replaces the surcharge. Negative values clamp to 0.
func (s *Service) SetExtraCharge(v float64) {
	if v < 0 {
		v = 0
	}
	s.mu.Lock()
	s.extra = v
	s.mu.Unlock()
}

// strategy is one alternative way of getting the product into the remote
// cart. Failures of non-final strategies are swallowed and the next one runs.
type strategy func(p models.Product, quantity int, pricing wc.CartItemPricing) (Result, error)

// Add runs the strategy cascade for one product. The quantity defaults to 1.
// Only exhaustion of the final fallback surfaces as an error.
func (s *Service) Add(p models.Product, quantity int) (Result, error) {
	if quantity < 1 {
		quantity = 1
	}
	if !s.begin(p.ID) {
		return Result{}, ErrInFlight
	}
	defer s.finish(p.ID)

	original := p.PriceValue()
	extra := s.ExtraCharge()
	pricing := wc.CartItemPricing{
		CustomPrice:   original + extra,
		ExtraCharge:   extra,
		OriginalPrice: original,
	}

	strategies := []strategy{s.addViaCoCart, s.addViaCatalogLookup, s.addViaRedirect}

	var res Result
	var err error
	for i, try := range strategies {
		res, err = try(p, quantity, pricing)
		if err == nil {
			res.OriginalPrice = pricing.OriginalPrice
			res.ExtraCharge = pricing.ExtraCharge
			res.FinalPrice = pricing.CustomPrice
			return res, nil
		}
		if i < len(strategies)-1 {
			log.Printf("⚠️ Remote cart add for product %d failed (%v), trying next method", p.ID, err)
		}
	}
	return Result{}, err
}

// InFlight reports whether an add is currently outstanding for the product.
func (s *Service) InFlight(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.inFlight[productID]
	return busy
}

func (s *Service) addViaCoCart(p models.Product, quantity int, pricing wc.CartItemPricing) (Result, error) {
	resp, err := s.api.CartAddItem(p.ID, quantity, pricing)
	if err != nil {
		return Result{}, err
	}
	msg := fmt.Sprintf("Product added! Price: %.2f + %.2f fee = %.2f", pricing.OriginalPrice, pricing.ExtraCharge, pricing.CustomPrice)
	if resp.ItemCount != nil {
		msg += fmt.Sprintf(" | Cart has %d items", *resp.ItemCount)
	}
	return Result{
		Strategy:  StrategyCoCart,
		Message:   msg,
		ItemCount: resp.ItemCount,
	}, nil
}

func (s *Service) addViaCatalogLookup(p models.Product, quantity int, pricing wc.CartItemPricing) (Result, error) {
	fetched, err := s.api.GetProduct(p.ID)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Strategy:    StrategyCatalogLookup,
		Message:     fmt.Sprintf("Opening storefront to add %q (original: %.2f, with fee: %.2f)", fetched.Name, pricing.OriginalPrice, pricing.CustomPrice),
		RedirectURL: s.api.AddToCartURL(p.ID, quantity),
	}, nil
}

// addViaRedirect is the unconditional fallback; building a URL cannot fail,
// so reaching it always succeeds.
func (s *Service) addViaRedirect(p models.Product, quantity int, pricing wc.CartItemPricing) (Result, error) {
	return Result{
		Strategy:    StrategyRedirect,
		Message:     fmt.Sprintf("Opening storefront to add product (original: %.2f, with %.2f fee = %.2f)", pricing.OriginalPrice, pricing.ExtraCharge, pricing.CustomPrice),
		RedirectURL: s.api.AddToCartURL(p.ID, quantity),
	}, nil
}

func (s *Service) begin(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[productID]; busy {
		return false
	}
	s.inFlight[productID] = struct{}{}
	return true
}

func (s *Service) finish(productID uint) {
	s.mu.Lock()
	delete(s.inFlight, productID)
	s.mu.Unlock()
}
