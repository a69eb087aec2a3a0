package contacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	contactdto "fieldreport/internal/modules/contact/dto"
	"fieldreport/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context, kind string) ([]contactdto.ContactOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Kind     string
	Contacts []contactdto.ContactOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type contactItem struct {
	contact contactdto.ContactOutput
}

func (i contactItem) Title() string { return i.contact.Name }

func (i contactItem) Description() string {
	parts := []string{}
	if i.contact.Address != "" {
		parts = append(parts, i.contact.Address)
	}
	parts = append(parts, fmt.Sprintf("%d visitas", len(i.contact.History)))
	return strings.Join(parts, " · ")
}

func (i contactItem) FilterValue() string { return i.contact.Name + " " + i.contact.Address }

// ─── model ───────────────────────────────────────────────────────────────────

// Model lists return visits or bible studies; t switches between them.
type Model struct {
	port   Port
	kind   string
	list   list.Model
	detail viewport.Model
	err    error
	width  int
	height int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Green).BorderForeground(theme.Green)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Green)

	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	m := Model{port: port, kind: "revisita", list: l, detail: vp}
	m.list.Title = listTitle(m.kind)
	return m
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Kind != m.kind {
			return m, nil
		}
		m.err = msg.Err
		items := make([]list.Item, len(msg.Contacts))
		for i, c := range msg.Contacts {
			items[i] = contactItem{contact: c}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering && msg.String() == "t" {
			if m.kind == "revisita" {
				m.kind = "estudo"
			} else {
				m.kind = "revisita"
			}
			m.list.Title = listTitle(m.kind)
			return m, m.Reload()
		}
	}

	prev := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prev {
		m.detail.SetContent(m.renderDetail())
	}
	var vCmd tea.Cmd
	m.detail, vCmd = m.detail.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) Kind() string { return m.kind }

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted contact, if any.
func (m Model) Selected() (contactdto.ContactOutput, bool) {
	if item, ok := m.list.SelectedItem().(contactItem); ok {
		return item.contact, true
	}
	return contactdto.ContactOutput{}, false
}

func (m Model) Reload() tea.Cmd {
	kind := m.kind
	return func() tea.Msg {
		contacts, err := m.port.List(context.Background(), kind)
		return LoadedMsg{Kind: kind, Contacts: contacts, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	if m.err != nil {
		return theme.Error.Render(m.err.Error())
	}
	c, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("Nenhum contato. Use: fieldreport contact add")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(c.Name) + "\n\n")
	field := func(label, value string) {
		if value != "" {
			sb.WriteString(theme.Muted.Render(label) + value + "\n")
		}
	}
	field("endereço:   ", c.Address)
	field("telefone:   ", c.Phone)
	field("publicação: ", c.Publication)
	field("assunto:    ", c.Subject)
	field("dia/hora:   ", c.Schedule)
	sb.WriteString("\n" + theme.Title.Render("Histórico") + "\n")
	if len(c.History) == 0 {
		sb.WriteString(theme.Muted.Render("sem visitas registradas") + "\n")
	}
	for _, h := range c.History {
		sb.WriteString(theme.Muted.Render(h.Date) + "  " + h.Note + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("t: revisitas/estudos"))
	return sb.String()
}

func listTitle(kind string) string {
	if kind == "estudo" {
		return "Estudos bíblicos"
	}
	return "Revisitas"
}
