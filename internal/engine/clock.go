package engine

import (
	"context"
	"time"
)

// SystemClock paces frames against the wall clock.
type SystemClock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewSystemClock creates a clock backed by time.Now and time.Sleep.
func NewSystemClock() *SystemClock {
	return &SystemClock{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Tick sleeps for whatever is left of the frame budget since the previous
// Tick and returns the full time between the two ticks. The first call
// returns immediately with zero.
func (c *SystemClock) Tick(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	budget := time.Second / time.Duration(fps)

	if c.last.IsZero() {
		c.last = c.now()
		return 0
	}

	if spent := c.now().Sub(c.last); spent < budget {
		c.sleep(budget - spent)
	}

	now := c.now()
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}

// Delay blocks for d or until ctx is done. The next Tick does not count
// the delay as frame time.
func (c *SystemClock) Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	c.last = time.Time{}
	return nil
}
