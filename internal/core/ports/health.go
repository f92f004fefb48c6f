package ports

import "context"

// HealthChecker probes one dependency of the edge service.
// Check returns an error when the dependency is unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
