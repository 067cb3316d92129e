package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/therafiali/woocommerce-storefront/cart"
	"github.com/therafiali/woocommerce-storefront/models"
)

const cartKeyPrefix = "woocommerce_cart:"

// Session is one guest's server-side state: their cart and the customer form
// draft used at checkout.
type Session struct {
	ID   string
	Cart *cart.Store

	mu       sync.Mutex
	customer models.CustomerInfo
	lastSeen time.Time
}

// Customer returns the current checkout form draft.
func (s *Session) Customer() models.CustomerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// SetCustomer replaces the checkout form draft.
func (s *Session) SetCustomer(info models.CustomerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = info
}

// ResetCustomer returns the draft to its empty defaults.
func (s *Session) ResetCustomer(country string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = models.DefaultCustomerInfo(country)
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager tracks guest sessions by the id carried in their token. Cart state
// outlives the process through storage; the in-memory entry is rebuilt on the
// first request after a restart.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	storage  cart.Storage
	country  string
}

func NewManager(storage cart.Storage, country string) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		storage:  storage,
		country:  country,
	}
}

// New creates a fresh guest session.
func (m *Manager) New() *Session {
	return m.Get("guest_" + uuid.NewString())
}

// Get returns the session for a validated token id, reviving it from cart
// storage when the process has not seen it yet.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if !ok {
		sess = &Session{
			ID:       id,
			Cart:     cart.Open(m.storage, cartKeyPrefix+id),
			customer: models.DefaultCustomerInfo(m.country),
		}
		m.sessions[id] = sess
	}
	m.mu.Unlock()

	sess.touch()
	return sess
}

// Sweep drops sessions idle longer than ttl and deletes their cart rows.
// Returns how many sessions were removed.
func (m *Manager) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	m.mu.Lock()
	var stale []*Session
	for id, sess := range m.sessions {
		if sess.idleSince().Before(cutoff) {
			stale = append(stale, sess)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, sess := range stale {
		_ = m.storage.Delete(cartKeyPrefix + sess.ID)
	}
	return len(stale)
}
