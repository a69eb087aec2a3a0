package usecase

import (
	"context"
	"fmt"

	accountin "fieldreport/internal/modules/account/port/in"
	"fieldreport/internal/modules/contact/domain"
	contactdto "fieldreport/internal/modules/contact/dto"
	contactin "fieldreport/internal/modules/contact/port/in"
	"fieldreport/internal/modules/contact/service"
	apperrors "fieldreport/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ContactService
	account accountin.Usecase
}

func NewInteractor(svc *service.ContactService, account accountin.Usecase) contactin.Usecase {
	return &Interactor{svc: svc, account: account}
}

func (i *Interactor) Add(ctx context.Context, input contactdto.AddContactInput) (contactdto.ContactOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return contactdto.ContactOutput{}, err
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return contactdto.ContactOutput{}, err
	}
	contact, err := i.svc.Add(ctx, domain.Contact{
		UserID:      userID,
		Kind:        kind,
		Name:        input.Name,
		Address:     input.Address,
		Phone:       input.Phone,
		Publication: input.Publication,
		Subject:     input.Subject,
		Schedule:    input.Schedule,
	})
	if err != nil {
		return contactdto.ContactOutput{}, err
	}
	return toOutput(contact), nil
}

func (i *Interactor) List(ctx context.Context, kind string) ([]contactdto.ContactOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	parsed, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	contacts, err := i.svc.List(ctx, userID, parsed)
	if err != nil {
		return nil, err
	}
	out := make([]contactdto.ContactOutput, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toOutput(contact))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, kind, id string) (contactdto.ContactOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return contactdto.ContactOutput{}, err
	}
	parsed, err := parseKind(kind)
	if err != nil {
		return contactdto.ContactOutput{}, err
	}
	contact, err := i.svc.Owned(ctx, userID, parsed, id)
	if err != nil {
		return contactdto.ContactOutput{}, err
	}
	return toOutput(contact), nil
}

func (i *Interactor) RecordVisit(ctx context.Context, input contactdto.RecordVisitInput) (contactdto.RecordVisitOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return contactdto.RecordVisitOutput{}, err
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return contactdto.RecordVisitOutput{}, err
	}
	contact, entryID, err := i.svc.RecordVisit(ctx, userID, kind, input.ContactID, input.Date, input.Note)
	if err != nil {
		return contactdto.RecordVisitOutput{}, err
	}
	return contactdto.RecordVisitOutput{Contact: toOutput(contact), EntryID: entryID, Minutes: kind.VisitMinutes()}, nil
}

func (i *Interactor) Promote(ctx context.Context, returnVisitID string) (contactdto.PromoteOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return contactdto.PromoteOutput{}, err
	}
	study, err := i.svc.Promote(ctx, userID, returnVisitID)
	if err != nil {
		return contactdto.PromoteOutput{}, err
	}
	return contactdto.PromoteOutput{RemovedID: returnVisitID, Study: toOutput(study)}, nil
}

func (i *Interactor) currentUserID(ctx context.Context) (string, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func parseKind(raw string) (domain.Kind, error) {
	kind, err := domain.ParseKind(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return kind, nil
}

func toOutput(contact domain.Contact) contactdto.ContactOutput {
	history := contact.HistoryNewestFirst()
	visits := make([]contactdto.VisitOutput, 0, len(history))
	for _, visit := range history {
		visits = append(visits, contactdto.VisitOutput{ID: visit.ID, Date: visit.Date, Note: visit.Note})
	}
	return contactdto.ContactOutput{
		ID:          contact.ID,
		UserID:      contact.UserID,
		Kind:        string(contact.Kind),
		Name:        contact.Name,
		Address:     contact.Address,
		Phone:       contact.Phone,
		PhoneDigits: contact.PhoneDigits(),
		Publication: contact.Publication,
		Subject:     contact.Subject,
		Schedule:    contact.Schedule,
		History:     visits,
	}
}
