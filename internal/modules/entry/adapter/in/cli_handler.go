package in

import (
	"context"

	entrydto "fieldreport/internal/modules/entry/dto"
	entryin "fieldreport/internal/modules/entry/port/in"
)

type CLIHandler struct {
	usecase entryin.Usecase
}

func NewCLIHandler(usecase entryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input entrydto.AddEntryInput) (entrydto.EntryOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Edit(ctx context.Context, input entrydto.EditEntryInput) (entrydto.EntryOutput, error) {
	return h.usecase.Edit(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Get(ctx context.Context, id string) (entrydto.EntryOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) ListRecent(ctx context.Context, limit int) ([]entrydto.EntryOutput, error) {
	return h.usecase.ListRecent(ctx, limit)
}

func (h CLIHandler) Categories(ctx context.Context) ([]string, error) {
	return h.usecase.Categories(ctx)
}
