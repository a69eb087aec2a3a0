package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	timerout "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/ui/theme"
)

// PickedMsg carries the user's choice for Kind.
type PickedMsg struct {
	Kind      string
	Selection timerout.Selection
}

// CancelledMsg is emitted when the user backs out with esc.
type CancelledMsg struct{ Kind string }

type candidateItem struct {
	candidate timerout.Candidate
	isNew     bool
	label     string
}

func (i candidateItem) Title() string {
	if i.isNew {
		return i.label
	}
	return i.candidate.Name
}

func (i candidateItem) Description() string {
	if i.isNew {
		return "registrar agora"
	}
	return i.candidate.Subtitle
}

func (i candidateItem) FilterValue() string { return i.Title() }

type keyMap struct {
	Choose key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "escolher")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
}

// Model asks which return visit or bible study a timer session is for. The
// first row registers a new contact by name.
type Model struct {
	kind     string
	list     list.Model
	input    textinput.Model
	entering bool
	width    int
}

func New(kind string, candidates []timerout.Candidate) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Peach).BorderForeground(theme.Peach)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Peach)

	items := make([]list.Item, 0, len(candidates)+1)
	items = append(items, candidateItem{isNew: true, label: newLabel(kind)})
	for _, c := range candidates {
		items = append(items, candidateItem{candidate: c})
	}

	l := list.New(items, delegate, 60, 16)
	l.Title = title(kind)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "nome"
	ti.CharLimit = 120

	return Model{kind: kind, list: l, input: ti, width: 60}
}

func (m Model) Kind() string { return m.kind }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.entering {
		return m.updateInput(msg)
	}
	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, keys.Back):
			kind := m.kind
			return m, func() tea.Msg { return CancelledMsg{Kind: kind} }
		case key.Matches(k, keys.Choose):
			item, ok := m.list.SelectedItem().(candidateItem)
			if !ok {
				return m, nil
			}
			if item.isNew {
				m.entering = true
				m.input.SetValue("")
				cmd := m.input.Focus()
				return m, cmd
			}
			return m, m.pick(timerout.Selection{ContactID: item.candidate.ID})
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Back):
			m.entering = false
			m.input.Blur()
			return m, nil
		case key.Matches(k, keys.Choose):
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			m.entering = false
			m.input.Blur()
			return m, m.pick(timerout.Selection{NewName: name})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) pick(selection timerout.Selection) tea.Cmd {
	kind := m.kind
	return func() tea.Msg { return PickedMsg{Kind: kind, Selection: selection} }
}

func (m Model) View() string {
	if m.entering {
		return theme.Pane.Width(m.width).Render(
			theme.Title.Render(newLabel(m.kind)) + "\n\n" +
				m.input.View() + "\n\n" +
				theme.Muted.Render("enter: registrar  esc: voltar"))
	}
	return m.list.View() + "\n" + theme.Muted.Render("enter: escolher  /: filtrar  esc: cancelar")
}

func title(kind string) string {
	if kind == "estudo" {
		return "Para qual estudo bíblico?"
	}
	return "Para qual revisita?"
}

func newLabel(kind string) string {
	if kind == "estudo" {
		return "+ Novo estudo"
	}
	return "+ Nova revisita"
}
