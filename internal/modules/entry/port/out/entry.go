package out

import (
	"context"

	"fieldreport/internal/modules/entry/domain"
)

type EntryStore interface {
	Save(ctx context.Context, entry domain.Entry) error
	FindByID(ctx context.Context, id string) (domain.Entry, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Entry, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
