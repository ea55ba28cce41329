package httpapi

import "context"

// ReadyChecker is optionally implemented by storage backends to indicate
// readiness for /readyz.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}
