package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilegrid/internal/application/replay"
	"github.com/younwookim/tilegrid/internal/application/state"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// countingSleep replaces the loop's sleep and counts calls
type countingSleep struct {
	calls int
	total time.Duration
}

func (c *countingSleep) sleep(_ context.Context, d time.Duration) error {
	c.calls++
	c.total += d
	return nil
}

func createTestLoop(t *testing.T, script string) (*Loop, *HeadlessSurface, *countingSleep) {
	t.Helper()

	data, err := replay.ParseScript("test", script)
	require.NoError(t, err)

	s := createTestSession(t, DefaultOptions())
	surface := NewHeadlessSurface(600, 400)
	loop := NewLoop(s, surface, replay.NewReplayer(data), 0, log.New(io.Discard))

	sleeper := &countingSleep{}
	loop.sleep = sleeper.sleep
	return loop, surface, sleeper
}

func TestNewLoop_Interval(t *testing.T) {
	s := createTestSession(t, DefaultOptions())
	surface := NewHeadlessSurface(10, 10)

	assert.Equal(t, time.Second/60, NewLoop(s, surface, replay.NewReplayer(replay.ReplayData{}), 0, log.New(io.Discard)).Interval())
	assert.Equal(t, time.Second/30, NewLoop(s, surface, replay.NewReplayer(replay.ReplayData{}), 30, log.New(io.Discard)).Interval())
}

func TestLoop_Step(t *testing.T) {
	loop, surface, _ := createTestLoop(t, "r . q")

	assert.True(t, loop.Step())
	assert.Equal(t, entity.GridPos{Col: 3, Row: 1}, loop.session.PlayerPos())
	assert.Equal(t, 1, surface.Presented())

	assert.True(t, loop.Step())
	assert.Equal(t, 2, surface.Presented())

	// Quit tick: no render
	assert.False(t, loop.Step())
	assert.Equal(t, 2, surface.Presented())
	assert.Equal(t, state.StateStopped, loop.session.State())

	// Stays stopped
	assert.False(t, loop.Step())
	assert.Equal(t, 2, loop.Ticks())
}

func TestLoop_Run(t *testing.T) {
	t.Run("runs until quit", func(t *testing.T) {
		loop, surface, sleeper := createTestLoop(t, "r d . l q r r")

		err := loop.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, state.StateStopped, loop.session.State())
		assert.Equal(t, entity.GridPos{Col: 2, Row: 2}, loop.session.PlayerPos())
		assert.Equal(t, 4, loop.Ticks())
		assert.Equal(t, 4, surface.Presented())
		// No sleep on the stopping tick
		assert.Equal(t, 4, sleeper.calls)
		assert.Equal(t, 4*loop.Interval(), sleeper.total)
	})

	t.Run("escape stops on the first tick", func(t *testing.T) {
		loop, surface, sleeper := createTestLoop(t, "esc")

		require.NoError(t, loop.Run(context.Background()))

		assert.Equal(t, 0, surface.Presented())
		assert.Equal(t, 0, sleeper.calls)
	})

	t.Run("cancelled context stops the session", func(t *testing.T) {
		loop, surface, _ := createTestLoop(t, "")

		ctx, cancel := context.WithCancel(context.Background())
		ticks := 0
		loop.sleep = func(context.Context, time.Duration) error {
			ticks++
			if ticks == 3 {
				cancel()
			}
			return nil
		}

		err := loop.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, state.StateStopped, loop.session.State())
		assert.Equal(t, 3, surface.Presented())
	})
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
