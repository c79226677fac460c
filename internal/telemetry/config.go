package telemetry

import (
	"strings"
	"time"
)

const (
	envEndpoint    = "RESTPAD_OTEL_ENDPOINT"
	envInsecure    = "RESTPAD_OTEL_INSECURE"
	envService     = "RESTPAD_OTEL_SERVICE"
	envDialTimeout = "RESTPAD_OTEL_DIAL_TIMEOUT"
	envHeaders     = "RESTPAD_OTEL_HEADERS"

	defaultServiceName = "restpad"
)

type Config struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
	Version     string
	DialTimeout time.Duration
	Headers     map[string]string
}

// Enabled reports whether an exporter endpoint has been configured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// ConfigFromEnv reads exporter configuration from the environment. getenv is
// injected so tests do not touch the process environment.
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := Config{
		Endpoint:    strings.TrimSpace(getenv(envEndpoint)),
		ServiceName: strings.TrimSpace(getenv(envService)),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}
	switch strings.ToLower(strings.TrimSpace(getenv(envInsecure))) {
	case "1", "t", "true", "yes", "on":
		cfg.Insecure = true
	}
	if raw := strings.TrimSpace(getenv(envDialTimeout)); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.DialTimeout = d
		}
	}
	if headers, err := ParseHeaders(getenv(envHeaders)); err == nil {
		cfg.Headers = headers
	}
	return cfg
}

// ParseHeaders parses a comma-separated key=value list into a header map.
// Blank input yields nil.
func ParseHeaders(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, errMalformedHeader(pair)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if len(headers) == 0 {
		return nil, nil
	}
	return headers, nil
}

type errMalformedHeader string

func (e errMalformedHeader) Error() string {
	return "malformed header pair: " + string(e)
}
