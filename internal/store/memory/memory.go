// Package memory is an in-process implementation of the pos repositories
// and the user store. It backs the test suite and DSN-less demo runs; the
// durable MySQL implementation lives in the parent store package.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/minipos/minipos-golang/internal/models"
	"github.com/minipos/minipos-golang/internal/pos"
)

// Store keeps everything in maps guarded by one mutex. The engine assumes
// a single writer per user; the mutex serializes the concurrent HTTP
// callers gin hands us so checkout stays observable as one transition.
type Store struct {
	mu       sync.Mutex
	products []models.Product
	carts    map[string][]models.CartLine
	history  map[string][]models.Order
	users    map[string]models.User
}

// New returns a store seeded with the default catalog.
func New() *Store {
	return &Store{
		products: models.DefaultProducts(),
		carts:    make(map[string][]models.CartLine),
		history:  make(map[string][]models.Order),
		users:    make(map[string]models.User),
	}
}

// --- pos.Catalog ---

func (s *Store) GetProduct(_ context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, pos.ErrUnknownProduct
}

func (s *Store) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) AddProduct(_ context.Context, p models.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	s.products = append(s.products, p)
	return nil
}

// RemoveProduct deletes a catalog entry. Carts referencing it become
// corrupt, which is exactly the condition the engine tests need to set up.
func (s *Store) RemoveProduct(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// --- pos.CartRepository ---

func (s *Store) Lines(_ context.Context, userID string) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *Store) Save(_ context.Context, userID string, lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := make([]models.CartLine, len(lines))
	copy(clone, lines)
	s.carts[userID] = clone
	return nil
}

func (s *Store) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

// --- pos.OrderRepository ---

func (s *Store) Commit(_ context.Context, userID string, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[userID] = append(s.history[userID], order)
	delete(s.carts, userID)
	return nil
}

func (s *Store) Orders(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := s.history[userID]
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out, nil
}

func (s *Store) Order(_ context.Context, userID string, id uuid.UUID) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.history[userID] {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, pos.ErrOrderNotFound
}

// --- user store ---

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.users[key]; exists {
		return models.User{}, models.ErrDuplicateEmail
	}
	user.Email = key
	s.users[key] = user
	return user, nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}
