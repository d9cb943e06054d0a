package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracedBridge(t *testing.T) {
	ctx := context.Background()
	config := TracingConfig{
		Enabled:     true,
		ServiceName: "test-service",
		ZipkinURL:   "http://localhost:9411/api/v2/spans",
	}
	tracer, cleanup, err := SetupOTel(ctx, config)
	require.NoError(t, err)
	defer cleanup()

	bridge := NewWatermillBridgeWithTracer(tracer)
	defer bridge.Close()

	received := make(chan Message, 1)
	err = bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		Payload:  []byte(`{"message": "hello world"}`),
		Metadata: map[string]string{"request_id": "req-123"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestSetupOTel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled tracing", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{Enabled: false})
		require.NoError(t, err)
		require.NotNil(t, tracer)
		require.NotNil(t, cleanup)

		_, span := tracer.Start(ctx, "test")
		span.End()
		cleanup()
	})

	t.Run("enabled tracing with unreachable collector", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{
			Enabled:     true,
			ServiceName: "test-service",
			ZipkinURL:   "http://invalid-url:9411/api/v2/spans",
		})
		require.NoError(t, err)
		require.NotNil(t, tracer)
		cleanup()
	})
}

func TestTracingConfigFromEnv(t *testing.T) {
	env := map[string]string{
		EnvTracingEnabled:     "true",
		EnvTracingServiceName: "folio-test",
		EnvTracingZipkinURL:   "http://zipkin:9411/api/v2/spans",
	}
	getenv := func(k string) string { return env[k] }

	config, err := TracingConfigFromEnv(getenv)
	require.NoError(t, err)
	assert.True(t, config.Enabled)
	assert.Equal(t, "folio-test", config.ServiceName)
	assert.Equal(t, "http://zipkin:9411/api/v2/spans", config.ZipkinURL)

	config, err = TracingConfigFromEnv(func(string) string { return "" })
	require.NoError(t, err)
	assert.Equal(t, DefaultTracingConfig(), config)

	env[EnvTracingEnabled] = "sometimes"
	_, err = TracingConfigFromEnv(getenv)
	assert.ErrorContains(t, err, EnvTracingEnabled)
}

func TestPayloadPreview(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, payloadPreview(long), payloadPreviewLen+3)
	assert.Equal(t, "short", payloadPreview([]byte("short")))
}
