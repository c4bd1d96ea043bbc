// internal/sched/tickclock.go

package sched

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

var errClockStopped = errors.New("tick clock stopped")

// TickClock paces logical ticks against wall time so a live consumer can
// follow the event stream. Each wall tick releases exactly one logical tick.
type TickClock struct {
	ch    chan struct{}
	count atomic.Int64
	stop  chan struct{}
}

// NewTickClock creates a stopped clock.
func NewTickClock() *TickClock {
	return &TickClock{
		ch:   make(chan struct{}),
		stop: make(chan struct{}),
	}
}

// Start begins releasing ticks at the given interval. Ticks nobody waits for
// are dropped rather than queued, so a slow consumer never bursts ahead.
func (c *TickClock) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case c.ch <- struct{}{}:
				default:
				}
			case <-c.stop:
				return
			}
		}
	}()
}

// Wait blocks until the next released tick or until ctx is done.
func (c *TickClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stop:
		return errClockStopped
	case <-c.ch:
		c.count.Add(1)
		return nil
	}
}

// Stop releases the clock goroutine. It must be called once.
func (c *TickClock) Stop() {
	close(c.stop)
}

// Count returns how many ticks have been consumed by Wait.
func (c *TickClock) Count() int64 {
	return c.count.Load()
}
