package kernel_test

import (
	"testing"
	"time"

	"loanaudit/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	clock := kernel.NewFixedClock(start)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start, clock.Now(), "reading must not move the clock")

	clock.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clock.Now())

	later := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestSystemClock(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)

	now := kernel.SystemClock{}.Now()

	assert.True(t, now.After(before))
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}
