package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	accountout "fieldreport/internal/modules/account/adapter/out"
	accountdto "fieldreport/internal/modules/account/dto"
	accountin "fieldreport/internal/modules/account/port/in"
	"fieldreport/internal/modules/account/service"
	"fieldreport/internal/modules/account/usecase"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/state"
)

type seqID struct{ n atomic.Int64 }

func (s *seqID) New() string { return "id-" + strconv.FormatInt(s.n.Add(1), 10) }

func newAccount(t *testing.T) (accountin.Usecase, *state.Repository) {
	t.Helper()
	repo := state.NewRepository(state.NewFileStore(filepath.Join(t.TempDir(), "state.json")), logging.Discard())
	svc := service.NewAccountService(&seqID{}, accountout.NewStateUserStore(repo), accountout.NewStateElderStore(repo), accountout.NewArgon2Hasher())
	return usecase.NewInteractor(svc), repo
}

func TestSignUpCreatesProfileGoalAndCurrentUser(t *testing.T) {
	t.Parallel()
	uc, repo := newAccount(t)
	ctx := context.Background()

	user, err := uc.SignUp(ctx, accountdto.SignUpInput{Name: " Ana ", Congregation: "Centro", Role: "regular", Email: " Ana@Example.COM ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if user.Email != "ana@example.com" || user.Name != "Ana" || user.RoleLabel != "Pioneiro Regular" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := repo.View(ctx, func(doc *state.Document) error {
		if doc.CurrentUser() != user.ID {
			t.Fatalf("expected current user %s, got %q", user.ID, doc.CurrentUser())
		}
		if doc.Config[user.ID].Nome != "Ana" {
			t.Fatalf("expected profile to be created: %+v", doc.Config)
		}
		goal := doc.Metas[user.ID]
		if goal.RegTipo != "mensal" || goal.PubMensal != nil || goal.RegAnual != nil {
			t.Fatalf("unexpected default goal: %+v", goal)
		}
		if doc.Users[0].Senha == "s3cret" {
			t.Fatalf("credential must not be stored in plain text")
		}
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}

	if _, err := uc.SignUp(ctx, accountdto.SignUpInput{Name: "Other", Role: "publicador", Email: "ana@example.com", Password: "x"}); !errors.Is(err, apperrors.ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestLoginLogoutAndBadCredentials(t *testing.T) {
	t.Parallel()
	uc, _ := newAccount(t)
	ctx := context.Background()

	created, err := uc.SignUp(ctx, accountdto.SignUpInput{Name: "Ana", Role: "publicador", Email: "ana@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrNoCurrentUser) {
		t.Fatalf("expected no current user after logout, got %v", err)
	}
	if _, err := uc.Login(ctx, accountdto.LoginInput{Email: "ana@example.com", Password: "wrong"}); !errors.Is(err, apperrors.ErrBadCredentials) {
		t.Fatalf("expected bad credentials, got %v", err)
	}
	if _, err := uc.Login(ctx, accountdto.LoginInput{Email: "nobody@example.com", Password: "pw"}); !errors.Is(err, apperrors.ErrBadCredentials) {
		t.Fatalf("expected bad credentials for unknown email, got %v", err)
	}
	logged, err := uc.Login(ctx, accountdto.LoginInput{Email: "ANA@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	current, err := uc.Current(ctx)
	if err != nil || current.ID != created.ID || logged.ID != created.ID {
		t.Fatalf("expected %s to be current, got %+v (%v)", created.ID, current, err)
	}
}

func TestLoginUpgradesLegacyPlaintextCredential(t *testing.T) {
	t.Parallel()
	uc, repo := newAccount(t)
	ctx := context.Background()
	if err := repo.Replace(ctx, state.Document{Users: []state.User{{ID: "u1", Nome: "Ana", Tipo: "auxiliar", Email: "ana@example.com", Senha: "legacy"}}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := uc.Login(ctx, accountdto.LoginInput{Email: "ana@example.com", Password: "legacy"}); err != nil {
		t.Fatalf("login with legacy credential: %v", err)
	}
	if err := repo.View(ctx, func(doc *state.Document) error {
		if doc.Users[0].Senha == "legacy" {
			t.Fatalf("expected credential to be rehashed")
		}
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Login(ctx, accountdto.LoginInput{Email: "ana@example.com", Password: "legacy"}); err != nil {
		t.Fatalf("login after rehash: %v", err)
	}
}

func TestProfileOverridesAndElders(t *testing.T) {
	t.Parallel()
	uc, _ := newAccount(t)
	ctx := context.Background()
	if _, err := uc.SignUp(ctx, accountdto.SignUpInput{Name: "Ana", Congregation: "Centro", Role: "publicador", Email: "ana@example.com", Password: "pw"}); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	profile, err := uc.UpdateProfile(ctx, accountdto.UpdateProfileInput{Name: "Ana Souza", Congregation: "Norte", Role: "auxiliar", ElderNote: "Irmão João"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if profile.Name != "Ana Souza" || profile.Congregation != "Norte" || profile.Role != "auxiliar" || profile.ElderNote != "Irmão João" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	current, err := uc.Current(ctx)
	if err != nil || current.Role != "auxiliar" {
		t.Fatalf("expected role change on user record, got %+v (%v)", current, err)
	}
	if _, err := uc.UpdateProfile(ctx, accountdto.UpdateProfileInput{Name: "x", Role: "bishop"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid role, got %v", err)
	}

	elder, err := uc.AddElder(ctx, accountdto.AddElderInput{Name: "João", Phone: "+55 (11) 98888-7777"})
	if err != nil {
		t.Fatalf("add elder: %v", err)
	}
	if elder.PhoneDigits != "5511988887777" {
		t.Fatalf("unexpected digits %q", elder.PhoneDigits)
	}
	elders, err := uc.ListElders(ctx)
	if err != nil || len(elders) != 1 {
		t.Fatalf("expected one elder, got %d (%v)", len(elders), err)
	}
	if err := uc.RemoveElder(ctx, elder.ID); err != nil {
		t.Fatalf("remove elder: %v", err)
	}
	if _, err := uc.GetElder(ctx, elder.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected removed elder to be missing, got %v", err)
	}
	if err := uc.RemoveElder(ctx, elder.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
}
