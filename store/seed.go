package store

import (
	"time"

	"github.com/google/uuid"
)

// seedDiscounts is the sample promotional data written on first load.
func seedDiscounts() []Discount {
	now := time.Now()
	return []Discount{
		{
			ID:         uuid.NewString(),
			Name:       "New Client Special",
			Type:       DiscountPercentage,
			Value:      20,
			Categories: []string{"Hair"},
			Tiers:      []string{"new"},
			ValidFrom:  now,
			ValidUntil: now.AddDate(0, 3, 0),
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Festive Flat 15",
			Type:       DiscountFixed,
			Value:      15,
			ValidFrom:  now,
			ValidUntil: now.AddDate(0, 1, 0),
			CreatedAt:  now,
		},
	}
}

// seedReviews is the sample feedback written on first load.
func seedReviews() []Review {
	now := time.Now()
	return []Review{
		{
			ID:           uuid.NewString(),
			CustomerName: "Priya S.",
			Rating:       5,
			Comment:      "Loved the keratin treatment, hair feels brand new.",
			Status:       ReviewApproved,
			CreatedAt:    now.AddDate(0, 0, -14),
		},
		{
			ID:           uuid.NewString(),
			CustomerName: "Aarav M.",
			Rating:       4,
			Comment:      "Great haircut, slight wait past my slot.",
			Status:       ReviewApproved,
			CreatedAt:    now.AddDate(0, 0, -7),
		},
	}
}
