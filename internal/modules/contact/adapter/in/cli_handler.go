package in

import (
	"context"

	contactdto "fieldreport/internal/modules/contact/dto"
	contactin "fieldreport/internal/modules/contact/port/in"
)

type CLIHandler struct {
	usecase contactin.Usecase
}

func NewCLIHandler(usecase contactin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input contactdto.AddContactInput) (contactdto.ContactOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) List(ctx context.Context, kind string) ([]contactdto.ContactOutput, error) {
	return h.usecase.List(ctx, kind)
}

func (h CLIHandler) Get(ctx context.Context, kind, id string) (contactdto.ContactOutput, error) {
	return h.usecase.Get(ctx, kind, id)
}

func (h CLIHandler) RecordVisit(ctx context.Context, kind, id, date, note string) (contactdto.RecordVisitOutput, error) {
	return h.usecase.RecordVisit(ctx, contactdto.RecordVisitInput{Kind: kind, ContactID: id, Date: date, Note: note})
}

func (h CLIHandler) Promote(ctx context.Context, id string) (contactdto.PromoteOutput, error) {
	return h.usecase.Promote(ctx, id)
}
