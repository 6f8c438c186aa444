package usecase

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var leadIDPattern = regexp.MustCompile(`^L-\d{8}-[A-Z0-9]{6}$`)

func TestNewLeadIDFormat(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	id := NewLeadID(now, time.UTC)

	assert.Regexp(t, leadIDPattern, id)
	assert.Equal(t, "L-20260831-", id[:11])
}

func TestNewLeadIDUsesConfiguredTimeZone(t *testing.T) {
	// 23:30 UTC is already the next calendar day in Auckland.
	auckland, err := time.LoadLocation("Pacific/Auckland")
	if err != nil {
		t.Skip("tzdata not available")
	}
	now := time.Date(2026, 8, 31, 23, 30, 0, 0, time.UTC)

	id := NewLeadID(now, auckland)

	assert.Equal(t, "L-20260901-", id[:11])
}

func TestNewLeadIDsDiffer(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewLeadID(now, time.UTC)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
