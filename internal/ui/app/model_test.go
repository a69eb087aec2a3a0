package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	contactdto "fieldreport/internal/modules/contact/dto"
	entrydto "fieldreport/internal/modules/entry/dto"
	reportdto "fieldreport/internal/modules/report/dto"
	timerdto "fieldreport/internal/modules/timer/dto"
	timerout "fieldreport/internal/modules/timer/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/ui/app"
	"fieldreport/internal/ui/components"
	"fieldreport/internal/ui/picker"
)

type startCall struct {
	categories             []string
	returnVisitID, studyID string
}

type fakeTimer struct {
	starts []startCall
}

func (f *fakeTimer) Start(_ context.Context, categories []string, returnVisitID, studyID string) (timerdto.SessionOutput, error) {
	f.starts = append(f.starts, startCall{categories: categories, returnVisitID: returnVisitID, studyID: studyID})
	return timerdto.SessionOutput{Categories: categories, Display: "00:00:00"}, nil
}
func (f *fakeTimer) Status(context.Context) (timerdto.SessionOutput, error) {
	return timerdto.SessionOutput{}, apperrors.ErrNoActiveTimer
}
func (f *fakeTimer) Tick(context.Context) (timerdto.TickOutput, error) {
	return timerdto.TickOutput{}, apperrors.ErrNoActiveTimer
}
func (f *fakeTimer) Toggle(context.Context) (timerdto.SessionOutput, error) {
	return timerdto.SessionOutput{}, apperrors.ErrNoActiveTimer
}
func (f *fakeTimer) Stop(context.Context, timerdto.Counters) (timerdto.StopOutput, error) {
	return timerdto.StopOutput{}, apperrors.ErrNoActiveTimer
}
func (f *fakeTimer) Cancel(context.Context) error { return apperrors.ErrNoActiveTimer }

type fakeContacts struct {
	added []contactdto.AddContactInput
}

func (f *fakeContacts) List(_ context.Context, kind string) ([]contactdto.ContactOutput, error) {
	if kind != "revisita" {
		return nil, nil
	}
	return []contactdto.ContactOutput{{ID: "r1", Kind: kind, Name: "Maria"}}, nil
}
func (f *fakeContacts) Add(_ context.Context, input contactdto.AddContactInput) (contactdto.ContactOutput, error) {
	f.added = append(f.added, input)
	return contactdto.ContactOutput{ID: "new-" + input.Kind, Kind: input.Kind, Name: input.Name}, nil
}
func (f *fakeContacts) RecordVisit(_ context.Context, kind, id, _, _ string) (contactdto.RecordVisitOutput, error) {
	return contactdto.RecordVisitOutput{Contact: contactdto.ContactOutput{ID: id, Kind: kind}}, nil
}

type fakeEntries struct{}

func (fakeEntries) ListRecent(context.Context, int) ([]entrydto.EntryOutput, error) { return nil, nil }

type fakeReports struct{}

func (fakeReports) Dashboard(context.Context) (reportdto.DashboardOutput, error) {
	return reportdto.DashboardOutput{}, nil
}
func (fakeReports) Text(_ context.Context, month string) (reportdto.ReportOutput, error) {
	return reportdto.ReportOutput{Month: month}, nil
}
func (fakeReports) Archive(context.Context, string) (reportdto.ArchiveOutput, error) {
	return reportdto.ArchiveOutput{Path: "reports/2026/03-ana.md"}, nil
}
func (fakeReports) Share(context.Context, string, string) (string, error) {
	return "https://wa.me/?text=x", nil
}

func newModel(timer *fakeTimer, contacts *fakeContacts) tea.Model {
	m := app.NewModel(app.Ports{
		Entries:  fakeEntries{},
		Reports:  fakeReports{},
		Timer:    timer,
		Contacts: contacts,
	}, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next
}

// step runs cmd and feeds its message back into m.
func step(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return m.Update(cmd())
}

func TestPaletteTimerStartAsksForReturnVisit(t *testing.T) {
	t.Parallel()
	timer := &fakeTimer{}
	contacts := &fakeContacts{}
	m := newModel(timer, contacts)

	m, cmd := m.Update(components.PaletteSubmitMsg{Input: "timer:start Campo, Revisitas"})
	m, _ = step(t, m, cmd)
	if view := m.View(); !strings.Contains(view, "Maria") || !strings.Contains(view, "Nova revisita") {
		t.Fatalf("expected the picker with existing return visits:\n%s", m.View())
	}
	if len(timer.starts) != 0 {
		t.Fatalf("timer must not start before a person is chosen")
	}

	m, cmd = m.Update(picker.PickedMsg{Kind: "revisita", Selection: timerout.Selection{NewName: "Lia"}})
	m, cmd = step(t, m, cmd)
	_, _ = step(t, m, cmd)
	if len(contacts.added) != 1 || contacts.added[0].Name != "Lia" || contacts.added[0].Kind != "revisita" {
		t.Fatalf("expected the new name to be registered, got %+v", contacts.added)
	}
	if len(timer.starts) != 1 {
		t.Fatalf("expected one start, got %d", len(timer.starts))
	}
	got := timer.starts[0]
	if strings.Join(got.categories, "|") != "Campo|Revisitas" || got.returnVisitID != "new-revisita" || got.studyID != "" {
		t.Fatalf("unexpected start call: %+v", got)
	}
}

func TestPaletteTimerStartWithoutPeopleStartsDirectly(t *testing.T) {
	t.Parallel()
	timer := &fakeTimer{}
	m := newModel(timer, &fakeContacts{})

	_, cmd := m.Update(components.PaletteSubmitMsg{Input: "timer:start Campo"})
	if cmd == nil {
		t.Fatalf("expected a start command")
	}
	cmd()
	if len(timer.starts) != 1 || timer.starts[0].returnVisitID != "" {
		t.Fatalf("unexpected starts: %+v", timer.starts)
	}
}

func TestPaletteReportsMissingMirrorAndUnknownCommands(t *testing.T) {
	t.Parallel()
	m := newModel(&fakeTimer{}, &fakeContacts{})

	m, _ = m.Update(components.PaletteSubmitMsg{Input: "mirror:push"})
	if !strings.Contains(m.View(), "espelho remoto não configurado") {
		t.Fatalf("expected mirror notice in status bar:\n%s", m.View())
	}
	m, _ = m.Update(components.PaletteSubmitMsg{Input: "dance"})
	if !strings.Contains(m.View(), "comando desconhecido: dance") {
		t.Fatalf("expected unknown command notice:\n%s", m.View())
	}
}
