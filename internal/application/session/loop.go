package session

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/younwookim/tilegrid/internal/infrastructure/telemetry"
)

// DefaultTPS is the loop cadence in ticks per second
const DefaultTPS = 60

// Loop runs a session at a fixed cadence: poll, update, draw, sleep.
// Everything happens on the calling goroutine.
type Loop struct {
	session  *Session
	surface  Surface
	input    InputSource
	interval time.Duration
	logger   *log.Logger
	ticks    int

	// sleep waits for the rest of the tick; replaced in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewLoop creates a loop ticking tps times per second (DefaultTPS if tps <= 0)
func NewLoop(s *Session, surface Surface, input InputSource, tps int, logger *log.Logger) *Loop {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Loop{
		session:  s,
		surface:  surface,
		input:    input,
		interval: time.Second / time.Duration(tps),
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Interval returns the time budget of one tick
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() int {
	return l.ticks
}

// Step runs one tick without the trailing sleep and reports whether the
// session is still running. Nothing is drawn on the tick that stops it.
func (l *Loop) Step() bool {
	if !l.session.Running() {
		return false
	}

	l.session.HandleEvents(l.input.Poll())
	if !l.session.Running() {
		return false
	}

	l.session.DrawFrame(l.surface)
	l.ticks++
	return true
}

// Run ticks until the session stops or ctx is done.
// Work exceeding the tick budget delays the next tick; drift is not corrected.
// A cancelled context stops the session and its error is returned.
func (l *Loop) Run(ctx context.Context) error {
	ctx, span := telemetry.Tracer("session").Start(ctx, "session.run")
	defer span.End()

	l.logger.Info("loop started", "tps", int(time.Second/l.interval))
	defer func() {
		span.SetAttributes(
			attribute.Int("session.ticks", l.ticks),
			attribute.Int("player.col", l.session.PlayerPos().Col),
			attribute.Int("player.row", l.session.PlayerPos().Row),
		)
		l.logger.Info("loop stopped", "ticks", l.ticks, "position", l.session.PlayerPos())
	}()

	for {
		if err := ctx.Err(); err != nil {
			l.session.Stop()
			return err
		}

		if !l.Step() {
			return nil
		}

		if err := l.sleep(ctx, l.interval); err != nil {
			l.session.Stop()
			return err
		}
	}
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
