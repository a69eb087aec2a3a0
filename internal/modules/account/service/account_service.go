package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fieldreport/internal/modules/account/domain"
	accountout "fieldreport/internal/modules/account/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/id"
)

type AccountService struct {
	idGen  id.Generator
	users  accountout.UserStore
	elders accountout.ElderStore
	hasher accountout.PasswordHasher
}

func NewAccountService(idGen id.Generator, users accountout.UserStore, elders accountout.ElderStore, hasher accountout.PasswordHasher) *AccountService {
	return &AccountService{idGen: idGen, users: users, elders: elders, hasher: hasher}
}

func (s *AccountService) SignUp(ctx context.Context, name, congregation, role, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	congregation = strings.TrimSpace(congregation)
	email = domain.NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: name, email and password are required", apperrors.ErrInvalidInput)
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	credential, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash credential: %w", err)
	}
	user := domain.User{
		ID:           s.idGen.New(),
		Name:         name,
		Congregation: congregation,
		Role:         parsedRole,
		Email:        email,
		Credential:   credential,
	}
	profile := domain.Profile{UserID: user.ID, Name: name, Congregation: congregation, Role: parsedRole}
	if err := s.users.Register(ctx, user, profile); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.User{}, apperrors.ErrBadCredentials
		}
		return domain.User{}, err
	}
	ok, needsRehash, err := s.hasher.Verify(password, user.Credential)
	if err != nil {
		return domain.User{}, fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.User{}, apperrors.ErrBadCredentials
	}
	if needsRehash {
		credential, err := s.hasher.Hash(password)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash credential: %w", err)
		}
		if err := s.users.UpdateCredential(ctx, user.ID, credential); err != nil {
			return domain.User{}, err
		}
		user.Credential = credential
	}
	if err := s.users.SetCurrent(ctx, user.ID); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.users.SetCurrent(ctx, "")
}

func (s *AccountService) Current(ctx context.Context) (domain.User, error) {
	userID, err := s.users.CurrentID(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if userID == "" {
		return domain.User{}, apperrors.ErrNoCurrentUser
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.User{}, apperrors.ErrNoCurrentUser
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *AccountService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AccountService) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	return s.users.LoadProfile(ctx, userID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID, name, congregation, role, elderNote string) (domain.Profile, error) {
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	profile := domain.Profile{
		UserID:       userID,
		Name:         strings.TrimSpace(name),
		Congregation: strings.TrimSpace(congregation),
		Role:         parsedRole,
		ElderNote:    strings.TrimSpace(elderNote),
	}
	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *AccountService) SetRole(ctx context.Context, userID, role string) error {
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.users.UpdateRole(ctx, userID, parsedRole)
}

func (s *AccountService) AddElder(ctx context.Context, userID, name, phone string) (domain.Elder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Elder{}, fmt.Errorf("%w: elder name is required", apperrors.ErrInvalidInput)
	}
	elder := domain.Elder{ID: s.idGen.New(), UserID: userID, Name: name, Phone: strings.TrimSpace(phone)}
	if err := s.elders.Add(ctx, elder); err != nil {
		return domain.Elder{}, err
	}
	return elder, nil
}

func (s *AccountService) RemoveElder(ctx context.Context, userID, elderID string) error {
	return s.elders.Remove(ctx, userID, elderID)
}

func (s *AccountService) Elder(ctx context.Context, userID, elderID string) (domain.Elder, error) {
	return s.elders.FindByID(ctx, userID, elderID)
}

func (s *AccountService) Elders(ctx context.Context, userID string) ([]domain.Elder, error) {
	return s.elders.ListByUser(ctx, userID)
}
