package in

import (
	"context"

	"fieldreport/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	Pause(ctx context.Context) (dto.SessionOutput, error)
	Resume(ctx context.Context) (dto.SessionOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	Cancel(ctx context.Context) error
	Tick(ctx context.Context) (dto.TickOutput, error)
	Status(ctx context.Context) (dto.SessionOutput, error)
}
