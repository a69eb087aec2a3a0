package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fieldreport/internal/modules/entry/domain"
	entryout "fieldreport/internal/modules/entry/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/id"
)

const DefaultRecentLimit = 10

type EntryService struct {
	clock clock.Clock
	idGen id.Generator
	store entryout.EntryStore
}

func NewEntryService(clock clock.Clock, idGen id.Generator, store entryout.EntryStore) *EntryService {
	return &EntryService{clock: clock, idGen: idGen, store: store}
}

func (s *EntryService) Add(ctx context.Context, entry domain.Entry, personName string) (domain.Entry, error) {
	entry.ID = s.idGen.New()
	entry.Category = domain.Category(strings.TrimSpace(string(entry.Category)))
	entry.Observation = strings.TrimSpace(entry.Observation)
	if strings.TrimSpace(entry.Date) == "" {
		entry.Date = clock.Day(s.clock.Now())
	}
	personName = strings.TrimSpace(personName)
	if personName != "" && entry.Category.Special() != domain.SpecialNone {
		entry.Observation = domain.PersonObservation(personName, entry.Observation)
	}
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Save(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *EntryService) Update(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	entry.Category = domain.Category(strings.TrimSpace(string(entry.Category)))
	entry.Observation = strings.TrimSpace(entry.Observation)
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Save(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

// Owned loads an entry and checks that it belongs to userID.
func (s *EntryService) Owned(ctx context.Context, userID, id string) (domain.Entry, error) {
	entry, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Entry{}, err
	}
	if entry.UserID != userID {
		return domain.Entry{}, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Owned(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *EntryService) List(ctx context.Context, userID string) ([]domain.Entry, error) {
	return s.store.ListByUser(ctx, userID)
}

// Recent returns the newest entries by day, keeping insertion order among
// entries of the same day.
func (s *EntryService) Recent(ctx context.Context, userID string, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *EntryService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.store.Categories(ctx)
}
