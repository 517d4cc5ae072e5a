package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DiscountKey is the fixed persistence key for the discount array.
const DiscountKey = "salon-discounts"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DiscountType `json:"type"`
	Value      float64      `json:"value"`
	Services   []string     `json:"services,omitempty"`
	Categories []string     `json:"categories,omitempty"`
	Tiers      []string     `json:"tiers,omitempty"`
	ValidFrom  time.Time    `json:"valid_from"`
	ValidUntil time.Time    `json:"valid_until"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Savings is the absolute amount this discount takes off price. Fixed
// discounts never push the price below zero.
func (d Discount) Savings(price float64) float64 {
	switch d.Type {
	case DiscountPercentage:
		return price * d.Value / 100
	case DiscountFixed:
		if d.Value > price {
			return price
		}
		return d.Value
	}
	return 0
}

// Applies reports whether the discount is inside its validity window and
// targets the given service, category and customer tier. Empty target
// lists mean "everything".
func (d Discount) Applies(serviceName, category, tier string, now time.Time) bool {
	if now.Before(d.ValidFrom) || now.After(d.ValidUntil) {
		return false
	}
	if len(d.Tiers) > 0 && !containsFold(d.Tiers, tier) {
		return false
	}
	if len(d.Services) == 0 && len(d.Categories) == 0 {
		return true
	}
	return containsFold(d.Services, serviceName) || containsFold(d.Categories, category)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// PriceQuote is the result of resolving the best discount for a price.
type PriceQuote struct {
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Savings         float64 `json:"savings"`
	DiscountID      string  `json:"discount_id,omitempty"`
	DiscountName    string  `json:"discount_name,omitempty"`
}

// DiscountStore holds the promotional records. Mutations rewrite the full
// array, persist it through the backend and then fire every listener with
// a snapshot.
type DiscountStore struct {
	mu        sync.RWMutex
	items     []Discount
	listeners map[int]func([]Discount)
	nextSub   int
	backend   Backend
}

// NewDiscountStore loads the persisted array, seeding sample data when the
// key has never been written.
func NewDiscountStore(ctx context.Context, backend Backend) (*DiscountStore, error) {
	s := &DiscountStore{
		listeners: make(map[int]func([]Discount)),
		backend:   backend,
	}

	data, err := backend.Load(ctx, DiscountKey)
	if err != nil {
		return nil, fmt.Errorf("load discounts: %w", err)
	}
	if len(data) == 0 {
		s.items = seedDiscounts()
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("decode discounts: %w", err)
	}
	return s, nil
}

// Subscribe registers a listener fired on every mutation. The returned
// func unsubscribes.
func (s *DiscountStore) Subscribe(fn func([]Discount)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *DiscountStore) All() []Discount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Discount(nil), s.items...)
}

func (s *DiscountStore) Add(ctx context.Context, d Discount) (Discount, error) {
	s.mu.Lock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	s.items = append(s.items, d)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return Discount{}, err
	}
	s.notify()
	return d, nil
}

func (s *DiscountStore) Update(ctx context.Context, d Discount) error {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == d.ID {
			d.CreatedAt = s.items[i].CreatedAt
			s.items[i] = d
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrRecordNotFound
	}
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *DiscountStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrRecordNotFound
	}
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// CalculateDiscountedPrice resolves the applicable discount yielding the
// maximum absolute savings. Equal savings keep the earlier record in array
// order. No applicable discount returns the price unchanged.
func (s *DiscountStore) CalculateDiscountedPrice(price float64, serviceName, category, tier string) PriceQuote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote := PriceQuote{OriginalPrice: price, DiscountedPrice: price}
	now := time.Now()
	for _, d := range s.items {
		if !d.Applies(serviceName, category, tier, now) {
			continue
		}
		if savings := d.Savings(price); savings > quote.Savings {
			quote.Savings = savings
			quote.DiscountedPrice = price - savings
			quote.DiscountID = d.ID
			quote.DiscountName = d.Name
		}
	}
	return quote
}

// persist must be called with the write lock held.
func (s *DiscountStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, DiscountKey, data)
}

func (s *DiscountStore) notify() {
	s.mu.RLock()
	snapshot := append([]Discount(nil), s.items...)
	listeners := make([]func([]Discount), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
