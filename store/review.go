package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ReviewKey is the fixed persistence key for the review array.
const ReviewKey = "salon-reviews"

var ErrRecordNotFound = errors.New("record not found")

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func IsValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// Review is customer feedback tied loosely to an appointment. The
// appointment id is a plain string match, not a foreign key.
type Review struct {
	ID            string       `json:"id"`
	AppointmentID string       `json:"appointment_id,omitempty"`
	CustomerName  string       `json:"customer_name"`
	Rating        int          `json:"rating"`
	Comment       string       `json:"comment"`
	Status        ReviewStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ReviewStore holds customer reviews with the same persist-and-notify
// contract as DiscountStore.
type ReviewStore struct {
	mu        sync.RWMutex
	items     []Review
	listeners map[int]func([]Review)
	nextSub   int
	backend   Backend
}

func NewReviewStore(ctx context.Context, backend Backend) (*ReviewStore, error) {
	s := &ReviewStore{
		listeners: make(map[int]func([]Review)),
		backend:   backend,
	}

	data, err := backend.Load(ctx, ReviewKey)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if len(data) == 0 {
		s.items = seedReviews()
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return s, nil
}

func (s *ReviewStore) Subscribe(fn func([]Review)) func() {
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

func (s *ReviewStore) All() []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Review(nil), s.items...)
}

// ByStatus returns reviews in the given moderation state.
func (s *ReviewStore) ByStatus(status ReviewStatus) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Review
	for _, r := range s.items {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Add stores a new review. Fresh reviews always start in moderation.
func (s *ReviewStore) Add(ctx context.Context, r Review) (Review, error) {
	s.mu.Lock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.Status = ReviewPending
	s.items = append(s.items, r)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return Review{}, err
	}
	s.notify()
	return r, nil
}

// SetStatus moderates a review.
func (s *ReviewStore) SetStatus(ctx context.Context, id string, status ReviewStatus) error {
	if !IsValidReviewStatus(status) {
		return fmt.Errorf("invalid review status: %s", status)
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
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

func (s *ReviewStore) Delete(ctx context.Context, id string) error {
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

// persist must be called with the write lock held.
func (s *ReviewStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, ReviewKey, data)
}

func (s *ReviewStore) notify() {
	s.mu.RLock()
	snapshot := append([]Review(nil), s.items...)
	listeners := make([]func([]Review), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
