package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format(DateLayout), Today())
}

func TestTodayComparesLexicographically(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(DateLayout)

	// The date filters rely on string comparison matching chronology.
	assert.True(t, tomorrow > Today())
	assert.True(t, yesterday < Today())
}
