package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and strip", "Hair & Nail Spa!!", "hair-nail-spa"},
		{"simple", "Facials", "facials"},
		{"multiple spaces", "Bridal   Makeup", "bridal-makeup"},
		{"existing hyphens collapse", "Spa -- Deluxe", "spa-deluxe"},
		{"leading and trailing junk", "  *Hot Stones*  ", "hot-stones"},
		{"digits kept", "90 Minute Massage", "90-minute-massage"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
