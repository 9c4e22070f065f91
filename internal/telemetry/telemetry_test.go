package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"traffic-exchange/internal/config/configs"
)

func TestSetupDisabledInstallsLocalProvider(t *testing.T) {
	p, err := Setup(context.Background(), configs.Otel{Enabled: false, ServiceName: "test"}, "test")
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}
