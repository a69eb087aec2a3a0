package out

import (
	"context"

	"fieldreport/internal/modules/contact/domain"
)

type ContactStore interface {
	Save(ctx context.Context, contact domain.Contact) error
	FindByID(ctx context.Context, kind domain.Kind, id string) (domain.Contact, error)
	ListByUser(ctx context.Context, kind domain.Kind, userID string) ([]domain.Contact, error)
	AppendVisit(ctx context.Context, kind domain.Kind, id string, visit domain.Visit) (domain.Contact, error)
	// Promote stores study and removes the return visit in one write.
	Promote(ctx context.Context, returnVisitID string, study domain.Contact) error
}

// VisitLogger records the entry credited for a visit.
type VisitLogger interface {
	LogVisit(ctx context.Context, userID, date string, minutes int, category, observation string) (string, error)
}
