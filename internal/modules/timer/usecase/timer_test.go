package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	accountdto "fieldreport/internal/modules/account/dto"
	contactdto "fieldreport/internal/modules/contact/dto"
	timerout "fieldreport/internal/modules/timer/adapter/out"
	timerdto "fieldreport/internal/modules/timer/dto"
	timerin "fieldreport/internal/modules/timer/port/in"
	timerport "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/modules/timer/service"
	"fieldreport/internal/modules/timer/usecase"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/state"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time          { return c.now }
func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

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

type fakeContacts struct {
	contacts []contactdto.ContactOutput
}

func (f *fakeContacts) Add(_ context.Context, input contactdto.AddContactInput) (contactdto.ContactOutput, error) {
	c := contactdto.ContactOutput{ID: fmt.Sprintf("c%d", len(f.contacts)+1), Kind: input.Kind, Name: input.Name}
	f.contacts = append(f.contacts, c)
	return c, nil
}
func (f *fakeContacts) List(_ context.Context, kind string) ([]contactdto.ContactOutput, error) {
	var out []contactdto.ContactOutput
	for _, c := range f.contacts {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeContacts) Get(_ context.Context, kind, id string) (contactdto.ContactOutput, error) {
	for _, c := range f.contacts {
		if c.Kind == kind && c.ID == id {
			return c, nil
		}
	}
	return contactdto.ContactOutput{}, apperrors.ErrNotFound
}
func (f *fakeContacts) RecordVisit(context.Context, contactdto.RecordVisitInput) (contactdto.RecordVisitOutput, error) {
	return contactdto.RecordVisitOutput{}, nil
}
func (f *fakeContacts) Promote(context.Context, string) (contactdto.PromoteOutput, error) {
	return contactdto.PromoteOutput{}, nil
}

type fakeSelector struct {
	answers map[string]timerport.Selection
	asked   []string
}

func (f *fakeSelector) SelectContact(_ context.Context, kind string, _ []timerport.Candidate) (timerport.Selection, error) {
	f.asked = append(f.asked, kind)
	answer, ok := f.answers[kind]
	if !ok {
		return timerport.Selection{}, apperrors.ErrSelectionCancelled
	}
	return answer, nil
}

type fakeEntries struct {
	logged []timerport.LoggedEntry
}

func (f *fakeEntries) LogSession(_ context.Context, entry timerport.LoggedEntry) (string, error) {
	f.logged = append(f.logged, entry)
	return fmt.Sprintf("entry-%d", len(f.logged)), nil
}

type fakeNotifier struct{ messages []string }

func (f *fakeNotifier) Notify(_ context.Context, message string) {
	f.messages = append(f.messages, message)
}

type harness struct {
	uc       timerin.Usecase
	clock    *stepClock
	account  *fakeAccount
	contacts *fakeContacts
	selector *fakeSelector
	entries  *fakeEntries
	notifier *fakeNotifier
	repo     *state.Repository
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:    &stepClock{now: time.Date(2026, 6, 6, 9, 0, 0, 0, time.UTC)},
		account:  &fakeAccount{current: "u1"},
		contacts: &fakeContacts{},
		selector: &fakeSelector{answers: map[string]timerport.Selection{}},
		entries:  &fakeEntries{},
		notifier: &fakeNotifier{},
	}
	h.repo = state.NewRepository(state.NewFileStore(filepath.Join(t.TempDir(), "state.json")), logging.Discard())
	svc := service.NewTimerService(h.clock, timerout.NewStateSessionStore(h.repo), h.entries, h.notifier)
	h.uc = usecase.NewInteractor(svc, h.clock, h.account, h.contacts, h.selector)
	return h
}

func TestStartPauseResumeStopLogsEntry(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo", "Cartas"}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	h.clock.advance(40 * time.Minute)
	if _, err := h.uc.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	h.clock.advance(25 * time.Minute)
	status, err := h.uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.Paused || status.Display != "00:40:00" {
		t.Fatalf("unexpected paused status: %+v", status)
	}
	if _, err := h.uc.Resume(ctx); err != nil {
		t.Fatalf("resume: %v", err)
	}
	h.clock.advance(35*time.Minute + 30*time.Second)

	out, err := h.uc.Stop(ctx, timerdto.StopInput{Counters: timerdto.Counters{Publications: 3, Letters: 1}})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if out.Hours != 1 || out.Minutes != 16 || out.Category != "Campo, Cartas" || out.CategoryCount != 2 || out.Date != "2026-06-06" {
		t.Fatalf("unexpected stop output: %+v", out)
	}
	if out.Observation != "Timer: 06/06/2026, 09:00 - 06/06/2026, 10:40" {
		t.Fatalf("unexpected observation %q", out.Observation)
	}
	logged := h.entries.logged[0]
	if logged.UserID != "u1" || logged.Publications != 3 || logged.Letters != 1 || logged.ReopenedVisits != 0 {
		t.Fatalf("unexpected logged entry: %+v", logged)
	}
	if _, err := h.uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected session to be destroyed, got %v", err)
	}
}

func TestStopImmediatelyLogsOneMinute(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := h.uc.Stop(ctx, timerdto.StopInput{})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if out.Hours != 0 || out.Minutes != 1 {
		t.Fatalf("expected one-minute floor, got %dh%dm", out.Hours, out.Minutes)
	}
}

func TestStartGuards(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.uc.Start(ctx, timerdto.StartInput{}); !errors.Is(err, apperrors.ErrNoCategory) {
		t.Fatalf("expected no category, got %v", err)
	}
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); !errors.Is(err, apperrors.ErrActiveTimerExists) {
		t.Fatalf("expected active timer, got %v", err)
	}

	h.account.current = "u2"
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); !errors.Is(err, apperrors.ErrTimerOwnedByOtherUser) {
		t.Fatalf("expected other user's timer, got %v", err)
	}
	if _, err := h.uc.Stop(ctx, timerdto.StopInput{}); !errors.Is(err, apperrors.ErrTimerOwnedByOtherUser) {
		t.Fatalf("expected stop to be refused, got %v", err)
	}
	if _, err := h.uc.Pause(ctx); !errors.Is(err, apperrors.ErrTimerOwnedByOtherUser) {
		t.Fatalf("expected pause to be refused, got %v", err)
	}

	h.account.current = ""
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); !errors.Is(err, apperrors.ErrNoCurrentUser) {
		t.Fatalf("expected no current user, got %v", err)
	}
}

func TestStartAsksForContactsOfSpecialCategories(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	h.contacts.contacts = []contactdto.ContactOutput{
		{ID: "r1", Kind: "revisita", Name: "Maria"},
		{ID: "e1", Kind: "estudo", Name: "João"},
	}
	h.selector.answers["revisita"] = timerport.Selection{ContactID: "r1"}
	h.selector.answers["estudo"] = timerport.Selection{NewName: "Pedro"}

	session, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Revisitas", "Estudo Bíblico"}})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(h.selector.asked) != 2 || h.selector.asked[0] != "revisita" || h.selector.asked[1] != "estudo" {
		t.Fatalf("unexpected selector prompts: %v", h.selector.asked)
	}
	if len(session.People) != 2 || session.People[0].Name != "Maria" || session.People[1].Name != "Pedro" {
		t.Fatalf("unexpected people: %+v", session.People)
	}
	h.clock.advance(20 * time.Minute)
	out, err := h.uc.Stop(ctx, timerdto.StopInput{})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	want := "Timer: 06/06/2026, 09:00 - 06/06/2026, 09:20 | Revisita: Maria, Estudo: Pedro"
	if out.Observation != want {
		t.Fatalf("observation = %q, want %q", out.Observation, want)
	}
}

func TestStartSkipsSelectorWhenContactGivenAndAbortsOnCancel(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	h.contacts.contacts = []contactdto.ContactOutput{{ID: "r1", Kind: "revisita", Name: "Maria"}}

	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Revisitas"}}); !errors.Is(err, apperrors.ErrSelectionCancelled) {
		t.Fatalf("expected cancelled selection, got %v", err)
	}
	if _, err := h.uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("cancelled start must not create a session, got %v", err)
	}

	session, err := h.uc.Start(ctx, timerdto.StartInput{
		Categories: []string{"Revisitas"},
		People:     []timerdto.PersonInput{{Kind: "revisita", ID: "r1"}},
	})
	if err != nil {
		t.Fatalf("start with contact: %v", err)
	}
	if len(h.selector.asked) != 1 || len(session.People) != 1 {
		t.Fatalf("selector must not be asked when a contact is given: %v", h.selector.asked)
	}
}

func TestTickNotifiesOncePerHourAndPersistsMarker(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	h.clock.advance(time.Hour)
	tick, err := h.uc.Tick(ctx)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if tick.NoticeHours != 1 || tick.Session.Display != "01:00:00" {
		t.Fatalf("unexpected tick: %+v", tick)
	}
	h.clock.advance(time.Second)
	tick, err = h.uc.Tick(ctx)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if tick.Notice != "" {
		t.Fatalf("notice repeated: %+v", tick)
	}
	if len(h.notifier.messages) != 1 || h.notifier.messages[0] != "⏰ 1 hora de serviço!" {
		t.Fatalf("unexpected notices: %v", h.notifier.messages)
	}
	if err := h.repo.View(ctx, func(doc *state.Document) error {
		if doc.TimerState == nil || doc.TimerState.LastHourNotified != 1 {
			t.Fatalf("hour marker not persisted: %+v", doc.TimerState)
		}
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestCancelDiscardsWithoutEntry(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.uc.Start(ctx, timerdto.StartInput{Categories: []string{"Campo"}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := h.uc.Cancel(ctx); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(h.entries.logged) != 0 {
		t.Fatalf("cancel must not log entries")
	}
	if err := h.uc.Cancel(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected no active timer, got %v", err)
	}
}
