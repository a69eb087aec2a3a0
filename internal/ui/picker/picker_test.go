package picker_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	timerout "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/ui/picker"
)

func run(t *testing.T, m picker.Model, keys ...tea.KeyMsg) (picker.Model, tea.Msg) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

var candidates = []timerout.Candidate{
	{ID: "r1", Name: "Maria", Subtitle: "Rua A"},
	{ID: "r2", Name: "José", Subtitle: "Rua B"},
}

func TestPickExistingContact(t *testing.T) {
	t.Parallel()
	_, msg := run(t, picker.New("revisita", candidates),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	picked, ok := msg.(picker.PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %#v", msg)
	}
	if picked.Kind != "revisita" || picked.Selection.ContactID != "r2" || picked.Selection.NewName != "" {
		t.Fatalf("unexpected pick: %+v", picked)
	}
}

func TestRegisterNewContactByName(t *testing.T) {
	t.Parallel()
	m := picker.New("estudo", nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("blank name must not be accepted")
	}
	_, msg := run(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Lia")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	picked, ok := msg.(picker.PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %#v", msg)
	}
	if picked.Kind != "estudo" || picked.Selection.NewName != "Lia" {
		t.Fatalf("unexpected pick: %+v", picked)
	}
}

func TestEscCancels(t *testing.T) {
	t.Parallel()
	_, msg := run(t, picker.New("revisita", candidates), tea.KeyMsg{Type: tea.KeyEsc})
	if cancelled, ok := msg.(picker.CancelledMsg); !ok || cancelled.Kind != "revisita" {
		t.Fatalf("expected CancelledMsg, got %#v", msg)
	}
}
