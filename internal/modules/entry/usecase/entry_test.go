package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	accountdto "fieldreport/internal/modules/account/dto"
	entryout "fieldreport/internal/modules/entry/adapter/out"
	entrydto "fieldreport/internal/modules/entry/dto"
	entryin "fieldreport/internal/modules/entry/port/in"
	"fieldreport/internal/modules/entry/service"
	"fieldreport/internal/modules/entry/usecase"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/state"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("entry-%d", s.n)
}

type fakeAccount struct {
	current string
}

func (f *fakeAccount) SignUp(context.Context, accountdto.SignUpInput) (accountdto.UserOutput, error) {
	return accountdto.UserOutput{}, nil
}
func (f *fakeAccount) Login(context.Context, accountdto.LoginInput) (accountdto.UserOutput, error) {
	return accountdto.UserOutput{}, nil
}
func (f *fakeAccount) Logout(context.Context) error { return nil }
func (f *fakeAccount) Current(context.Context) (accountdto.UserOutput, error) {
	if f.current == "" {
		return accountdto.UserOutput{}, apperrors.ErrNoCurrentUser
	}
	return accountdto.UserOutput{ID: f.current}, nil
}
func (f *fakeAccount) GetUser(_ context.Context, id string) (accountdto.UserOutput, error) {
	return accountdto.UserOutput{ID: id}, nil
}
func (f *fakeAccount) GetProfile(context.Context, string) (accountdto.ProfileOutput, error) {
	return accountdto.ProfileOutput{}, nil
}
func (f *fakeAccount) UpdateProfile(context.Context, accountdto.UpdateProfileInput) (accountdto.ProfileOutput, error) {
	return accountdto.ProfileOutput{}, nil
}
func (f *fakeAccount) SetRole(context.Context, string, string) error { return nil }
func (f *fakeAccount) AddElder(context.Context, accountdto.AddElderInput) (accountdto.ElderOutput, error) {
	return accountdto.ElderOutput{}, nil
}
func (f *fakeAccount) RemoveElder(context.Context, string) error { return nil }
func (f *fakeAccount) ListElders(context.Context) ([]accountdto.ElderOutput, error) {
	return nil, nil
}
func (f *fakeAccount) GetElder(context.Context, string) (accountdto.ElderOutput, error) {
	return accountdto.ElderOutput{}, nil
}

func newEntries(t *testing.T, account *fakeAccount, now time.Time) entryin.Usecase {
	t.Helper()
	repo := state.NewRepository(state.NewFileStore(filepath.Join(t.TempDir(), "state.json")), logging.Discard())
	svc := service.NewEntryService(&fakeClock{values: []time.Time{now}}, &seqID{}, entryout.NewStateEntryStore(repo))
	return usecase.NewInteractor(svc, account)
}

func TestAddDefaultsDateAndPrefixesPersonName(t *testing.T) {
	t.Parallel()
	uc := newEntries(t, &fakeAccount{current: "u1"}, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	visit, err := uc.Add(ctx, entrydto.AddEntryInput{Minutes: 20, Category: "Revisitas", Observation: "Deixei revista", PersonName: "Maria"})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if visit.Date != "2026-03-14" || visit.UserID != "u1" {
		t.Fatalf("expected today's date for current user, got %+v", visit)
	}
	if visit.Observation != "Maria: Deixei revista" {
		t.Fatalf("unexpected observation %q", visit.Observation)
	}

	study, err := uc.Add(ctx, entrydto.AddEntryInput{Hours: 1, Category: "Estudo Bíblico", PersonName: "João"})
	if err != nil {
		t.Fatalf("add study entry: %v", err)
	}
	if study.Observation != "João" {
		t.Fatalf("expected bare name observation, got %q", study.Observation)
	}

	field, err := uc.Add(ctx, entrydto.AddEntryInput{Hours: 2, Category: "Campo", Observation: "Território 4", PersonName: "Ignored"})
	if err != nil {
		t.Fatalf("add field entry: %v", err)
	}
	if field.Observation != "Território 4" {
		t.Fatalf("person name must only apply to contact categories, got %q", field.Observation)
	}
}

func TestAddRejectsInvalidInputAndMissingUser(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	uc := newEntries(t, &fakeAccount{current: "u1"}, now)
	ctx := context.Background()

	if _, err := uc.Add(ctx, entrydto.AddEntryInput{Hours: 1}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected missing category to fail, got %v", err)
	}
	if _, err := uc.Add(ctx, entrydto.AddEntryInput{Hours: 1, Category: "Campo", Date: "14/03/2026"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected bad date to fail, got %v", err)
	}

	anonymous := newEntries(t, &fakeAccount{}, now)
	if _, err := anonymous.Add(ctx, entrydto.AddEntryInput{Hours: 1, Category: "Campo"}); !errors.Is(err, apperrors.ErrNoCurrentUser) {
		t.Fatalf("expected no current user, got %v", err)
	}
}

func TestEditDeleteAndOwnership(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{current: "u1"}
	uc := newEntries(t, account, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := uc.Add(ctx, entrydto.AddEntryInput{Hours: 1, Minutes: 30, Category: "Campo"})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	minutes := 75
	obs := "corrigido"
	edited, err := uc.Edit(ctx, entrydto.EditEntryInput{ID: created.ID, Minutes: &minutes, Observation: &obs, Counters: &entrydto.Counters{Publications: 3}})
	if err != nil {
		t.Fatalf("edit entry: %v", err)
	}
	if edited.Hours != 1 || edited.Minutes != 75 || edited.Observation != "corrigido" || edited.Counters.Publications != 3 {
		t.Fatalf("unexpected edited entry: %+v", edited)
	}

	account.current = "u2"
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("other users must not delete the entry, got %v", err)
	}
	account.current = "u1"
	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if _, err := uc.Get(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected deleted entry to be gone, got %v", err)
	}
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected stale id to be reported, got %v", err)
	}
}

func TestListRecentSortsByDateDescendingAndLimits(t *testing.T) {
	t.Parallel()
	uc := newEntries(t, &fakeAccount{current: "u1"}, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for day := 1; day <= 12; day++ {
		date := fmt.Sprintf("2026-03-%02d", day)
		if _, err := uc.Add(ctx, entrydto.AddEntryInput{Date: date, Hours: 1, Category: "Campo"}); err != nil {
			t.Fatalf("add entry %s: %v", date, err)
		}
	}
	recent, err := uc.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("expected default limit of 10, got %d", len(recent))
	}
	if recent[0].Date != "2026-03-12" || recent[9].Date != "2026-03-03" {
		t.Fatalf("unexpected order: first %s last %s", recent[0].Date, recent[9].Date)
	}

	categories, err := uc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 6 || categories[3] != "Estudo Bíblico" {
		t.Fatalf("unexpected default categories: %v", categories)
	}
}
