package out

import (
	"context"

	"fieldreport/internal/modules/account/domain"
	accountout "fieldreport/internal/modules/account/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/state"
)

const defaultRegularMode = "mensal"

type StateUserStore struct {
	repo *state.Repository
}

func NewStateUserStore(repo *state.Repository) accountout.UserStore {
	return &StateUserStore{repo: repo}
}

func (s *StateUserStore) Register(ctx context.Context, user domain.User, profile domain.Profile) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		for _, existing := range doc.Users {
			if existing.Email == user.Email {
				return apperrors.ErrDuplicateEmail
			}
		}
		doc.Users = append(doc.Users, toStateUser(user))
		doc.Config[user.ID] = state.Profile{
			Nome:        profile.Name,
			Congregacao: profile.Congregation,
			Tipo:        string(profile.Role),
			Anciao:      profile.ElderNote,
		}
		doc.Metas[user.ID] = state.Goal{Tipo: string(user.Role), RegTipo: defaultRegularMode}
		doc.SetCurrentUser(user.ID)
		return nil
	})
}

func (s *StateUserStore) FindByID(ctx context.Context, id string) (domain.User, error) {
	var found domain.User
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, user := range doc.Users {
			if user.ID == id {
				found = fromStateUser(user)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	return found, err
}

func (s *StateUserStore) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var found domain.User
	err := s.repo.View(ctx, func(doc *state.Document) error {
		for _, user := range doc.Users {
			if domain.NormalizeEmail(user.Email) == email {
				found = fromStateUser(user)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	return found, err
}

func (s *StateUserStore) UpdateCredential(ctx context.Context, userID, credential string) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		idx := userIndex(doc, userID)
		if idx < 0 {
			return apperrors.ErrNotFound
		}
		doc.Users[idx].Senha = credential
		return nil
	})
}

func (s *StateUserStore) CurrentID(ctx context.Context) (string, error) {
	var current string
	err := s.repo.View(ctx, func(doc *state.Document) error {
		current = doc.CurrentUser()
		return nil
	})
	return current, err
}

func (s *StateUserStore) SetCurrent(ctx context.Context, userID string) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		if userID != "" && userIndex(doc, userID) < 0 {
			return apperrors.ErrNotFound
		}
		doc.SetCurrentUser(userID)
		return nil
	})
}

func (s *StateUserStore) LoadProfile(ctx context.Context, userID string) (domain.Profile, error) {
	var profile domain.Profile
	err := s.repo.View(ctx, func(doc *state.Document) error {
		if userIndex(doc, userID) < 0 {
			return apperrors.ErrNotFound
		}
		cfg := doc.Config[userID]
		profile = domain.Profile{
			UserID:       userID,
			Name:         cfg.Nome,
			Congregation: cfg.Congregacao,
			Role:         domain.Role(cfg.Tipo),
			ElderNote:    cfg.Anciao,
		}
		return nil
	})
	return profile, err
}

func (s *StateUserStore) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		idx := userIndex(doc, profile.UserID)
		if idx < 0 {
			return apperrors.ErrNotFound
		}
		doc.Users[idx].Nome = profile.Name
		doc.Users[idx].Congregacao = profile.Congregation
		doc.Users[idx].Tipo = string(profile.Role)
		doc.Config[profile.UserID] = state.Profile{
			Nome:        profile.Name,
			Congregacao: profile.Congregation,
			Tipo:        string(profile.Role),
			Anciao:      profile.ElderNote,
		}
		return nil
	})
}

func (s *StateUserStore) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		idx := userIndex(doc, userID)
		if idx < 0 {
			return apperrors.ErrNotFound
		}
		doc.Users[idx].Tipo = string(role)
		if cfg, ok := doc.Config[userID]; ok {
			cfg.Tipo = string(role)
			doc.Config[userID] = cfg
		}
		return nil
	})
}

func userIndex(doc *state.Document, userID string) int {
	for i, user := range doc.Users {
		if user.ID == userID {
			return i
		}
	}
	return -1
}

func toStateUser(user domain.User) state.User {
	return state.User{
		ID:          user.ID,
		Nome:        user.Name,
		Congregacao: user.Congregation,
		Tipo:        string(user.Role),
		Email:       user.Email,
		Senha:       user.Credential,
	}
}

func fromStateUser(user state.User) domain.User {
	return domain.User{
		ID:           user.ID,
		Name:         user.Nome,
		Congregation: user.Congregacao,
		Role:         domain.Role(user.Tipo),
		Email:        user.Email,
		Credential:   user.Senha,
	}
}
