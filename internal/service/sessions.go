package service

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps a session id to the cart owned by that session.
type Sessions struct {
	mu      sync.Mutex
	carts   map[string]*CartService
	newCart func() *CartService
}

func NewSessions(newCart func() *CartService) *Sessions {
	return &Sessions{
		carts:   make(map[string]*CartService),
		newCart: newCart,
	}
}

func (s *Sessions) Get(id string) (*CartService, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	return cart, ok
}

// Open returns the cart of an existing session, or starts a new session when
// id is empty or unknown. The returned id is the one to use from now on.
func (s *Sessions) Open(id string) (string, *CartService) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[id]; ok {
		return id, cart
	}

	id = uuid.NewString()
	cart := s.newCart()
	s.carts[id] = cart

	return id, cart
}

func (s *Sessions) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.carts)
}
