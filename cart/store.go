package cart

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"sync"

	"github.com/therafiali/woocommerce-storefront/models"
)

// ErrNotFound is returned by Storage.Load when no cart was ever saved under
// the key.
var ErrNotFound = errors.New("cart: not found")

// Storage persists one serialized cart per key.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// Store holds the line items of one cart and writes them through to durable
// storage after every mutation. At most one line item exists per product id
// and quantities never drop below 1.
type Store struct {
	mu      sync.Mutex
	key     string
	storage Storage
	items   []models.CartItem
}

// Open loads the persisted cart under key. Absent or unreadable state starts
// an empty cart instead of failing.
func Open(storage Storage, key string) *Store {
	s := &Store{key: key, storage: storage}
	data, err := storage.Load(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("⚠️ Could not load cart %s, starting empty: %v", key, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		log.Printf("⚠️ Discarding unreadable cart %s: %v", key, err)
		s.items = nil
	}
	return s
}

// AddItem puts a product into the cart. An existing line item gets its
// quantity bumped by one; a new product is appended with quantity 1,
// snapshotting its current price and primary image.
func (s *Store) AddItem(p models.Product) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			s.persist()
			return s.items[i]
		}
	}

	item := models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.PriceValue(),
		Quantity:  1,
		Image:     p.PrimaryImage(),
	}
	s.items = append(s.items, item)
	s.persist()
	return item
}

// RemoveItem drops the line item for productID. Returns false when the cart
// had no such item.
func (s *Store) RemoveItem(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

// SetQuantity sets the quantity for productID. Zero or negative quantities
// remove the line item. Returns false when the cart had no such item.
func (s *Store) SetQuantity(productID uint, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return true
		}
	}
	return false
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the cart value, rounded to cents.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// Count is the sum of all quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) removeLocked(productID uint) bool {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// persist writes the full cart state. Callers hold the lock.
func (s *Store) persist() {
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("❌ Failed to serialize cart %s: %v", s.key, err)
		return
	}
	if err := s.storage.Save(s.key, data); err != nil {
		log.Printf("❌ Failed to persist cart %s: %v", s.key, err)
	}
}
