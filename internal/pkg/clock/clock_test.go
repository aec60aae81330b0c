//go:build unit

package clock_test

import (
	"testing"
	"time"

	"hotel-pricing/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	// 23:30 UTC is already the next day in Prague
	now := time.Date(2026, time.June, 9, 23, 30, 0, 0, time.UTC)
	c := clock.NewMockClock(now)

	prague, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Skip("tzdata not available")
	}

	assert.Equal(t, "2026-06-09", clock.Today(c, time.UTC).String())
	assert.Equal(t, "2026-06-10", clock.Today(c, prague).String())
	assert.Equal(t, "2026-06-09", clock.Today(c, nil).String())
}

func TestMockClockAdvance(t *testing.T) {
	c := clock.NewMockClock(time.Date(2026, time.June, 9, 22, 0, 0, 0, time.UTC))

	c.Add(3 * time.Hour)
	assert.Equal(t, "2026-06-10", clock.Today(c, time.UTC).String())

	c.Set(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-01", clock.Today(c, time.UTC).String())
}
