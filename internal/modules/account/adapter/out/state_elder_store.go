package out

import (
	"context"

	"fieldreport/internal/modules/account/domain"
	accountout "fieldreport/internal/modules/account/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/state"
)

type StateElderStore struct {
	repo *state.Repository
}

func NewStateElderStore(repo *state.Repository) accountout.ElderStore {
	return &StateElderStore{repo: repo}
}

func (s *StateElderStore) Add(ctx context.Context, elder domain.Elder) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		doc.Anciaos = append(doc.Anciaos, state.Elder{
			ID:       elder.ID,
			UserID:   elder.UserID,
			Nome:     elder.Name,
			Telefone: elder.Phone,
		})
		return nil
	})
}

func (s *StateElderStore) Remove(ctx context.Context, userID, id string) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		for i, elder := range doc.Anciaos {
			if elder.ID == id && elder.UserID == userID {
				doc.Anciaos = append(doc.Anciaos[:i], doc.Anciaos[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (s *StateElderStore) FindByID(ctx context.Context, userID, id string) (domain.Elder, error) {
	var found domain.Elder
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, elder := range doc.Anciaos {
			if elder.ID == id && elder.UserID == userID {
				found = fromStateElder(elder)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	return found, err
}

func (s *StateElderStore) ListByUser(ctx context.Context, userID string) ([]domain.Elder, error) {
	var elders []domain.Elder
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, elder := range doc.Anciaos {
			if elder.UserID == userID {
				elders = append(elders, fromStateElder(elder))
			}
		}
		return nil
	})
	return elders, err
}

func fromStateElder(elder state.Elder) domain.Elder {
	return domain.Elder{ID: elder.ID, UserID: elder.UserID, Name: elder.Nome, Phone: elder.Telefone}
}
