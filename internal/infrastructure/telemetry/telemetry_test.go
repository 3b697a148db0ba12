package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer_DefaultsToNoop(t *testing.T) {
	tracer := Tracer("test")
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "noop")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid(), "no provider installed, span should not be recorded")
}

func TestHostname(t *testing.T) {
	assert.NotEmpty(t, hostname())
}
