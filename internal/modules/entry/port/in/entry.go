package in

import (
	"context"

	"fieldreport/internal/modules/entry/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddEntryInput) (dto.EntryOutput, error)
	Edit(ctx context.Context, input dto.EditEntryInput) (dto.EntryOutput, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.EntryOutput, error)
	ListRecent(ctx context.Context, limit int) ([]dto.EntryOutput, error)
	ListByUser(ctx context.Context, userID string) ([]dto.EntryOutput, error)
	Categories(ctx context.Context) ([]string, error)
}
