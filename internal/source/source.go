package source

import (
	"context"
)

// Source feeds raw log lines to the viewer or the print path.
// Implementations own their goroutines; Read drains whatever arrived since
// the previous call.
type Source interface {
	Start(ctx context.Context) error
	Stop()
	Read() ([]string, error)
	Connected() bool
}
