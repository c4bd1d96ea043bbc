package sched

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickClock_WaitReleasesTicks(t *testing.T) {
	c := NewTickClock()
	c.Start(time.Millisecond)
	defer c.Stop()

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Wait(context.Background()))
	}
	assert.Equal(t, int64(3), c.Count())
}

func TestTickClock_WaitCancelled(t *testing.T) {
	c := NewTickClock()
	c.Start(time.Hour)
	defer c.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Wait(ctx), context.DeadlineExceeded)
}

func TestTickClock_WaitAfterStop(t *testing.T) {
	c := NewTickClock()
	c.Stop()
	assert.ErrorIs(t, c.Wait(context.Background()), errClockStopped)
}
