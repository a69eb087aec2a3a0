package service

import (
	"context"
	"fmt"
	"strings"

	"fieldreport/internal/modules/contact/domain"
	contactout "fieldreport/internal/modules/contact/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/id"
)

type ContactService struct {
	clock  clock.Clock
	idGen  id.Generator
	store  contactout.ContactStore
	visits contactout.VisitLogger
}

func NewContactService(clock clock.Clock, idGen id.Generator, store contactout.ContactStore, visits contactout.VisitLogger) *ContactService {
	return &ContactService{clock: clock, idGen: idGen, store: store, visits: visits}
}

func (s *ContactService) Add(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	contact.ID = s.idGen.New()
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Address = strings.TrimSpace(contact.Address)
	contact.Phone = strings.TrimSpace(contact.Phone)
	contact.Publication = strings.TrimSpace(contact.Publication)
	contact.Subject = strings.TrimSpace(contact.Subject)
	contact.Schedule = strings.TrimSpace(contact.Schedule)
	contact.History = []domain.Visit{}
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Save(ctx, contact); err != nil {
		return domain.Contact{}, err
	}
	return contact, nil
}

func (s *ContactService) Owned(ctx context.Context, userID string, kind domain.Kind, contactID string) (domain.Contact, error) {
	contact, err := s.store.FindByID(ctx, kind, contactID)
	if err != nil {
		return domain.Contact{}, err
	}
	if contact.UserID != userID {
		return domain.Contact{}, apperrors.ErrNotFound
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, userID string, kind domain.Kind) ([]domain.Contact, error) {
	return s.store.ListByUser(ctx, kind, userID)
}

// RecordVisit appends a history item and credits the visit as an entry on
// the same day.
func (s *ContactService) RecordVisit(ctx context.Context, userID string, kind domain.Kind, contactID, date, note string) (domain.Contact, string, error) {
	contact, err := s.Owned(ctx, userID, kind, contactID)
	if err != nil {
		return domain.Contact{}, "", err
	}
	if strings.TrimSpace(date) == "" {
		date = clock.Day(s.clock.Now())
	}
	note = strings.TrimSpace(note)
	visit := domain.Visit{ID: s.idGen.New(), Date: date, Note: note}
	updated, err := s.store.AppendVisit(ctx, kind, contactID, visit)
	if err != nil {
		return domain.Contact{}, "", err
	}
	entryID, err := s.visits.LogVisit(ctx, contact.UserID, date, kind.VisitMinutes(), kind.Category(), contact.VisitObservation(note))
	if err != nil {
		return domain.Contact{}, "", fmt.Errorf("log visit entry: %w", err)
	}
	return updated, entryID, nil
}

func (s *ContactService) Promote(ctx context.Context, userID, returnVisitID string) (domain.Contact, error) {
	visit, err := s.Owned(ctx, userID, domain.KindReturnVisit, returnVisitID)
	if err != nil {
		return domain.Contact{}, err
	}
	study, err := visit.PromoteToStudy(s.idGen.New())
	if err != nil {
		return domain.Contact{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Promote(ctx, returnVisitID, study); err != nil {
		return domain.Contact{}, err
	}
	return study, nil
}
