package cart

import (
	"sync"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
)

// Store keeps one cart per session, in memory only. Carts live exactly as
// long as the process; there is intentionally no persistence behind them.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]domain.CartItem)}
}

// Get returns a copy of the session's cart; mutating the result does not
// touch the store.
func (s *Store) Get(sessionID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(sessionID)
}

// AddItem inserts the item if absent, otherwise increments its quantity by
// one. There is no maximum-quantity or stock guard.
func (s *Store) AddItem(sessionID string, item domain.CartItem) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			return s.snapshot(sessionID)
		}
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	s.carts[sessionID] = append(items, item)
	return s.snapshot(sessionID)
}

// UpdateQuantity sets the item's quantity. A quantity of zero or less
// removes the item.
func (s *Store) UpdateQuantity(sessionID, itemID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		return s.snapshot(sessionID), nil
	}
	return domain.Cart{}, domain.ErrNotFound
}

// RemoveItem drops the item unconditionally; removing an absent item is a
// no-op.
func (s *Store) RemoveItem(sessionID, itemID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == itemID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return s.snapshot(sessionID)
}

// Clear empties the session's cart. Idempotent.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *Store) snapshot(sessionID string) domain.Cart {
	items := s.carts[sessionID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return domain.Cart{SessionID: sessionID, Items: out}
}
