package in

import (
	"context"

	"fieldreport/internal/modules/mirror/dto"
)

type Usecase interface {
	Enabled() bool
	Push(ctx context.Context) (dto.SyncOutput, error)
	Pull(ctx context.Context) (dto.SyncOutput, error)
	// Watch pushes the logged-in user's records on schedule until ctx is
	// done.
	Watch(ctx context.Context, schedule string) error
}
