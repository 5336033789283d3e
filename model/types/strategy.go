package types

import "context"

// Strategy is the allocation capability shared by every allocation rule.
// Implementations must be deterministic and side-effect free for a given
// rank once constructed.
type Strategy interface {
	Name() string
	Allocate(ctx context.Context, rank int) (string, error)
}
