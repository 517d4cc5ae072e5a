package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activeDiscount(id, name string, typ DiscountType, value float64) Discount {
	now := time.Now()
	return Discount{
		ID:         id,
		Name:       name,
		Type:       typ,
		Value:      value,
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
		CreatedAt:  now,
	}
}

func newTestDiscountStore(t *testing.T, discounts ...Discount) *DiscountStore {
	t.Helper()
	ctx := context.Background()
	s, err := NewDiscountStore(ctx, NewMemoryBackend())
	assert.NoError(t, err)

	// Replace the seed data with the fixture set.
	for _, d := range s.All() {
		assert.NoError(t, s.Delete(ctx, d.ID))
	}
	for _, d := range discounts {
		_, err := s.Add(ctx, d)
		assert.NoError(t, err)
	}
	return s
}

func TestCalculateDiscountedPricePicksMaxSavings(t *testing.T) {
	// $100 service, 20% off (save $20) beats flat $15 off.
	s := newTestDiscountStore(t,
		activeDiscount("d1", "Flat 15", DiscountFixed, 15),
		activeDiscount("d2", "Twenty Percent", DiscountPercentage, 20),
	)

	quote := s.CalculateDiscountedPrice(100, "Haircut", "Hair", "regular")
	assert.Equal(t, 80.0, quote.DiscountedPrice)
	assert.Equal(t, 20.0, quote.Savings)
	assert.Equal(t, "d2", quote.DiscountID)
}

func TestCalculateDiscountedPriceFixedClamp(t *testing.T) {
	// $15 fixed discount on a $10 service never drives the price below zero.
	s := newTestDiscountStore(t,
		activeDiscount("d1", "Flat 15", DiscountFixed, 15),
	)

	quote := s.CalculateDiscountedPrice(10, "Threading", "Brows", "regular")
	assert.Equal(t, 0.0, quote.DiscountedPrice)
	assert.Equal(t, 10.0, quote.Savings)
}

func TestCalculateDiscountedPriceTieBreak(t *testing.T) {
	// Equal savings: the earlier record in array order wins.
	s := newTestDiscountStore(t,
		activeDiscount("first", "Ten Percent", DiscountPercentage, 10),
		activeDiscount("second", "Flat 10", DiscountFixed, 10),
	)

	quote := s.CalculateDiscountedPrice(100, "Haircut", "Hair", "regular")
	assert.Equal(t, 10.0, quote.Savings)
	assert.Equal(t, "first", quote.DiscountID)
}

func TestCalculateDiscountedPriceNoMatch(t *testing.T) {
	expired := activeDiscount("d1", "Old Promo", DiscountPercentage, 50)
	expired.ValidUntil = time.Now().Add(-time.Minute)

	targeted := activeDiscount("d2", "Nails Only", DiscountPercentage, 30)
	targeted.Services = []string{"Manicure"}
	targeted.Categories = []string{"Nails"}

	s := newTestDiscountStore(t, expired, targeted)

	quote := s.CalculateDiscountedPrice(100, "Haircut", "Hair", "regular")
	assert.Equal(t, 100.0, quote.DiscountedPrice)
	assert.Equal(t, 0.0, quote.Savings)
	assert.Empty(t, quote.DiscountID)
}

func TestDiscountTargeting(t *testing.T) {
	now := time.Now()
	d := activeDiscount("d1", "Hair Promo", DiscountPercentage, 10)
	d.Services = []string{"Keratin Treatment"}
	d.Categories = []string{"Hair"}
	d.Tiers = []string{"gold"}

	// Service name match, right tier
	assert.True(t, d.Applies("Keratin Treatment", "Spa", "gold", now))
	// Category match, right tier
	assert.True(t, d.Applies("Blow Dry", "Hair", "gold", now))
	// Wrong tier blocks even a matching service
	assert.False(t, d.Applies("Keratin Treatment", "Hair", "new", now))
	// Neither service nor category matches
	assert.False(t, d.Applies("Manicure", "Nails", "gold", now))
	// Outside validity window
	assert.False(t, d.Applies("Keratin Treatment", "Hair", "gold", now.Add(2*time.Hour)))
}

func TestDiscountStoreSeedsOnFirstLoad(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	s, err := NewDiscountStore(ctx, backend)
	assert.NoError(t, err)
	assert.NotEmpty(t, s.All())

	// Seed was persisted, so a second store over the same backend sees it.
	s2, err := NewDiscountStore(ctx, backend)
	assert.NoError(t, err)
	assert.Equal(t, len(s.All()), len(s2.All()))
}

func TestDiscountStorePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	s, err := NewDiscountStore(ctx, backend)
	assert.NoError(t, err)
	added, err := s.Add(ctx, activeDiscount("", "Weekend Deal", DiscountFixed, 5))
	assert.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	reloaded, err := NewDiscountStore(ctx, backend)
	assert.NoError(t, err)

	found := false
	for _, d := range reloaded.All() {
		if d.ID == added.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDiscountStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	s := newTestDiscountStore(t)

	var calls int
	var lastSeen []Discount
	unsubscribe := s.Subscribe(func(items []Discount) {
		calls++
		lastSeen = items
	})

	_, err := s.Add(ctx, activeDiscount("d1", "Promo", DiscountFixed, 5))
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, lastSeen, 1)

	assert.NoError(t, s.Delete(ctx, "d1"))
	assert.Equal(t, 2, calls)
	assert.Empty(t, lastSeen)

	unsubscribe()
	_, err = s.Add(ctx, activeDiscount("d2", "Promo 2", DiscountFixed, 5))
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDiscountStoreUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestDiscountStore(t)

	err := s.Update(ctx, activeDiscount("ghost", "Ghost", DiscountFixed, 1))
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = s.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
