package out

import (
	"context"

	"fieldreport/internal/modules/mirror/domain"
	"fieldreport/internal/platform/state"
)

// Remote stores one mirrored document per user. Push merges: top-level
// fields not sent are kept remotely.
type Remote interface {
	Push(ctx context.Context, userID string, doc domain.Document) error
	// Pull reports false when the user has no remote document.
	Pull(ctx context.Context, userID string) (domain.Document, bool, error)
}

// LocalState is the subset of the state repository the mirror needs.
type LocalState interface {
	Snapshot(ctx context.Context) (state.Document, error)
	Update(ctx context.Context, fn func(doc *state.Document) error) error
}
