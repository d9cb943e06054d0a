package pubsub

import (
	"fmt"
	"strconv"
)

// Environment variables read by TracingConfigFromEnv.
const (
	EnvTracingEnabled     = "PUBSUB_TRACING_ENABLED"
	EnvTracingServiceName = "PUBSUB_TRACING_SERVICE_NAME"
	EnvTracingZipkinURL   = "PUBSUB_TRACING_ZIPKIN_URL"
)

// TracingConfigFromEnv overlays the PUBSUB_TRACING_* variables, looked up
// through getenv, on DefaultTracingConfig. Unset variables keep the default.
func TracingConfigFromEnv(getenv func(string) string) (TracingConfig, error) {
	cfg := DefaultTracingConfig()

	if v := getenv(EnvTracingEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s value %q: %w", EnvTracingEnabled, v, err)
		}
		cfg.Enabled = enabled
	}
	if v := getenv(EnvTracingServiceName); v != "" {
		cfg.ServiceName = v
	}
	if v := getenv(EnvTracingZipkinURL); v != "" {
		cfg.ZipkinURL = v
	}
	return cfg, nil
}
