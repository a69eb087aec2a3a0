package in

import (
	"context"

	"fieldreport/internal/modules/contact/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddContactInput) (dto.ContactOutput, error)
	List(ctx context.Context, kind string) ([]dto.ContactOutput, error)
	Get(ctx context.Context, kind, id string) (dto.ContactOutput, error)
	RecordVisit(ctx context.Context, input dto.RecordVisitInput) (dto.RecordVisitOutput, error)
	Promote(ctx context.Context, returnVisitID string) (dto.PromoteOutput, error)
}
