package ports

import "context"

// HealthChecker is a dependency probed by GET /health.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
