package out

import (
	"context"

	"fieldreport/internal/modules/entry/domain"
	entryout "fieldreport/internal/modules/entry/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/state"
)

type StateEntryStore struct {
	repo *state.Repository
}

func NewStateEntryStore(repo *state.Repository) entryout.EntryStore {
	return &StateEntryStore{repo: repo}
}

func (s *StateEntryStore) Save(ctx context.Context, entry domain.Entry) error {
	record := toStateEntry(entry)
	return s.repo.Update(ctx, func(doc *state.Document) error {
		for i := range doc.Entries {
			if doc.Entries[i].ID == entry.ID {
				doc.Entries[i] = record
				return nil
			}
		}
		doc.Entries = append(doc.Entries, record)
		return nil
	})
}

func (s *StateEntryStore) FindByID(ctx context.Context, id string) (domain.Entry, error) {
	var found domain.Entry
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, entry := range doc.Entries {
			if entry.ID == id {
				found = fromStateEntry(entry)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	return found, err
}

func (s *StateEntryStore) Delete(ctx context.Context, id string) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		for i, entry := range doc.Entries {
			if entry.ID == id {
				doc.Entries = append(doc.Entries[:i], doc.Entries[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (s *StateEntryStore) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, entry := range doc.Entries {
			if entry.UserID == userID {
				entries = append(entries, fromStateEntry(entry))
			}
		}
		return nil
	})
	return entries, err
}

func (s *StateEntryStore) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, c := range doc.Modalidades {
			categories = append(categories, domain.Category(c))
		}
		return nil
	})
	return categories, err
}

func toStateEntry(entry domain.Entry) state.Entry {
	return state.Entry{
		ID:               entry.ID,
		UserID:           entry.UserID,
		Data:             entry.Date,
		Horas:            entry.Hours,
		Minutos:          entry.Minutes,
		Modalidade:       string(entry.Category),
		Obs:              entry.Observation,
		Publicacoes:      entry.Counters.Publications,
		RevisitasAbertas: entry.Counters.ReopenedVisits,
		Cartas:           entry.Counters.Letters,
	}
}

func fromStateEntry(entry state.Entry) domain.Entry {
	return domain.Entry{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Date:        entry.Data,
		Hours:       entry.Horas,
		Minutes:     entry.Minutos,
		Category:    domain.Category(entry.Modalidade),
		Observation: entry.Obs,
		Counters: domain.Counters{
			Publications:   entry.Publicacoes,
			ReopenedVisits: entry.RevisitasAbertas,
			Letters:        entry.Cartas,
		},
	}
}
