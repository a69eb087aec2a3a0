package timer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Standalone wraps the view as a full program for `timer watch`. It quits
// on q or once the session is stopped or discarded.
type Standalone struct {
	view Model
}

func NewStandalone(port Port) Standalone {
	return Standalone{view: New(port)}
}

func (s Standalone) Init() tea.Cmd { return s.view.Init() }

func (s Standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "ctrl+c", "esc":
			return s, tea.Quit
		}
	}
	var cmd tea.Cmd
	s.view, cmd = s.view.Update(msg)
	switch msg := msg.(type) {
	case StoppedMsg:
		if msg.Err == nil {
			return s, tea.Sequence(cmd, tea.Quit)
		}
	case CancelledMsg:
		if msg.Err == nil {
			return s, tea.Sequence(cmd, tea.Quit)
		}
	}
	return s, cmd
}

func (s Standalone) View() string {
	return s.view.View() + "\n  q: sair (o timer continua)"
}

// Status is the last message shown by the view.
func (s Standalone) Status() string { return s.view.status }
