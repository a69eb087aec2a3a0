package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	accountdto "fieldreport/internal/modules/account/dto"
	contactout "fieldreport/internal/modules/contact/adapter/out"
	contactdto "fieldreport/internal/modules/contact/dto"
	contactin "fieldreport/internal/modules/contact/port/in"
	"fieldreport/internal/modules/contact/service"
	"fieldreport/internal/modules/contact/usecase"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/state"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type loggedVisit struct {
	userID, date, category, observation string
	minutes                             int
}

type fakeVisitLogger struct {
	logged []loggedVisit
}

func (f *fakeVisitLogger) LogVisit(_ context.Context, userID, date string, minutes int, category, observation string) (string, error) {
	f.logged = append(f.logged, loggedVisit{userID: userID, date: date, category: category, observation: observation, minutes: minutes})
	return fmt.Sprintf("entry-%d", len(f.logged)), nil
}

type fakeAccount struct{ current string }

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

func newContacts(t *testing.T, account *fakeAccount, visits *fakeVisitLogger) (contactin.Usecase, *state.Repository) {
	t.Helper()
	repo := state.NewRepository(state.NewFileStore(filepath.Join(t.TempDir(), "state.json")), logging.Discard())
	svc := service.NewContactService(fixedClock{now: time.Date(2026, 5, 20, 18, 0, 0, 0, time.UTC)}, &seqID{}, contactout.NewStateContactStore(repo), visits)
	return usecase.NewInteractor(svc, account), repo
}

func TestRecordVisitAppendsHistoryAndCreditsEntry(t *testing.T) {
	t.Parallel()
	visits := &fakeVisitLogger{}
	uc, _ := newContacts(t, &fakeAccount{current: "u1"}, visits)
	ctx := context.Background()

	rv, err := uc.Add(ctx, contactdto.AddContactInput{Kind: "revisita", Name: " Maria ", Address: "Rua A", Publication: "Sentinela"})
	if err != nil {
		t.Fatalf("add return visit: %v", err)
	}
	if rv.Name != "Maria" || len(rv.History) != 0 {
		t.Fatalf("unexpected contact: %+v", rv)
	}

	if _, err := uc.RecordVisit(ctx, contactdto.RecordVisitInput{Kind: "revisita", ContactID: rv.ID, Date: "2026-05-10", Note: "primeira"}); err != nil {
		t.Fatalf("record first visit: %v", err)
	}
	out, err := uc.RecordVisit(ctx, contactdto.RecordVisitInput{Kind: "revisita", ContactID: rv.ID, Note: "segunda"})
	if err != nil {
		t.Fatalf("record second visit: %v", err)
	}
	if out.Minutes != 15 || out.EntryID != "entry-2" {
		t.Fatalf("unexpected record output: %+v", out)
	}
	if len(out.Contact.History) != 2 || out.Contact.History[0].Date != "2026-05-20" || out.Contact.History[1].Note != "primeira" {
		t.Fatalf("expected newest-first history, got %+v", out.Contact.History)
	}
	last := visits.logged[1]
	if last.userID != "u1" || last.date != "2026-05-20" || last.minutes != 15 || last.category != "Revisitas" || last.observation != "Revisita: Maria. segunda" {
		t.Fatalf("unexpected logged visit: %+v", last)
	}

	study, err := uc.Add(ctx, contactdto.AddContactInput{Kind: "estudo", Name: "João", Schedule: "Sábado 10h"})
	if err != nil {
		t.Fatalf("add study: %v", err)
	}
	if _, err := uc.RecordVisit(ctx, contactdto.RecordVisitInput{Kind: "estudo", ContactID: study.ID, Note: "lição 2"}); err != nil {
		t.Fatalf("record study: %v", err)
	}
	if got := visits.logged[2]; got.minutes != 0 || got.category != "Estudo Bíblico" || got.observation != "Estudo: João. lição 2" {
		t.Fatalf("unexpected logged study: %+v", got)
	}
}

func TestPromoteMovesReturnVisitWithHistory(t *testing.T) {
	t.Parallel()
	uc, repo := newContacts(t, &fakeAccount{current: "u1"}, &fakeVisitLogger{})
	ctx := context.Background()

	rv, err := uc.Add(ctx, contactdto.AddContactInput{Kind: "revisita", Name: "Maria", Phone: "11 9999-0000"})
	if err != nil {
		t.Fatalf("add return visit: %v", err)
	}
	for i, date := range []string{"2026-01-05", "2026-01-12", "2026-01-19"} {
		if _, err := uc.RecordVisit(ctx, contactdto.RecordVisitInput{Kind: "revisita", ContactID: rv.ID, Date: date, Note: fmt.Sprintf("visita %d", i+1)}); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}

	promoted, err := uc.Promote(ctx, rv.ID)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if promoted.RemovedID != rv.ID || promoted.Study.Kind != "estudo" || len(promoted.Study.History) != 3 {
		t.Fatalf("unexpected promote output: %+v", promoted)
	}
	if _, err := uc.Get(ctx, "revisita", rv.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected return visit to be removed, got %v", err)
	}
	if err := repo.View(ctx, func(doc *state.Document) error {
		if len(doc.Revisitas) != 0 || len(doc.Estudos) != 1 {
			t.Fatalf("unexpected lists: %d revisitas, %d estudos", len(doc.Revisitas), len(doc.Estudos))
		}
		stored := doc.Estudos[0].Historico
		if len(stored) != 3 || stored[0].Data != "2026-01-05" || stored[2].Data != "2026-01-19" {
			t.Fatalf("expected insertion order in storage, got %+v", stored)
		}
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
	if _, err := uc.Promote(ctx, rv.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected stale promote to fail, got %v", err)
	}
}

func TestContactsAreScopedToCurrentUser(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{current: "u1"}
	uc, _ := newContacts(t, account, &fakeVisitLogger{})
	ctx := context.Background()

	rv, err := uc.Add(ctx, contactdto.AddContactInput{Kind: "revisita", Name: "Maria"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := uc.Add(ctx, contactdto.AddContactInput{Kind: "revisita", Name: "  "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected blank name to fail, got %v", err)
	}
	if _, err := uc.Add(ctx, contactdto.AddContactInput{Kind: "vizinho", Name: "X"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected bad kind to fail, got %v", err)
	}

	account.current = "u2"
	list, err := uc.List(ctx, "revisita")
	if err != nil || len(list) != 0 {
		t.Fatalf("expected no contacts for other user, got %d (%v)", len(list), err)
	}
	if _, err := uc.RecordVisit(ctx, contactdto.RecordVisitInput{Kind: "revisita", ContactID: rv.ID}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for other user's contact, got %v", err)
	}
}
