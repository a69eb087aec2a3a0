package in

import (
	"context"

	"fieldreport/internal/modules/mirror/dto"
	mirrorin "fieldreport/internal/modules/mirror/port/in"
)

type CLIHandler struct {
	usecase mirrorin.Usecase
}

func NewCLIHandler(usecase mirrorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Enabled() bool {
	return h.usecase.Enabled()
}

func (h CLIHandler) Push(ctx context.Context) (dto.SyncOutput, error) {
	return h.usecase.Push(ctx)
}

func (h CLIHandler) Pull(ctx context.Context) (dto.SyncOutput, error) {
	return h.usecase.Pull(ctx)
}

func (h CLIHandler) Watch(ctx context.Context, schedule string) error {
	return h.usecase.Watch(ctx, schedule)
}
