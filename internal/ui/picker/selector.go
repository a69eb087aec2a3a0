package picker

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	timerout "fieldreport/internal/modules/timer/port/out"
	apperrors "fieldreport/internal/platform/errors"
)

// Selector runs the picker as its own terminal program. It serves commands
// started outside the full-screen app.
type Selector struct {
	In  io.Reader
	Out io.Writer
}

func NewSelector(in io.Reader, out io.Writer) timerout.ContactSelector {
	return &Selector{In: in, Out: out}
}

func (s *Selector) SelectContact(ctx context.Context, kind string, candidates []timerout.Candidate) (timerout.Selection, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}
	final, err := tea.NewProgram(standalone{picker: New(kind, candidates)}, opts...).Run()
	if err != nil {
		return timerout.Selection{}, fmt.Errorf("run contact picker: %w", err)
	}
	result, ok := final.(standalone)
	if !ok || result.picked == nil {
		return timerout.Selection{}, apperrors.ErrSelectionCancelled
	}
	return *result.picked, nil
}

type standalone struct {
	picker Model
	picked *timerout.Selection
}

func (s standalone) Init() tea.Cmd { return s.picker.Init() }

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.picker.SetSize(msg.Width, msg.Height-2)
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return s, tea.Quit
		}
	case PickedMsg:
		selection := msg.Selection
		s.picked = &selection
		return s, tea.Quit
	case CancelledMsg:
		return s, tea.Quit
	}
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

func (s standalone) View() string { return s.picker.View() }
