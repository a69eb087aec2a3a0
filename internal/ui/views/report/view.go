package report

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	reportdto "fieldreport/internal/modules/report/dto"
	"fieldreport/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	ReportText(ctx context.Context, input reportdto.MonthInput) (reportdto.ReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Report reportdto.ReportOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model previews the monthly report text; ←/→ step through months.
type Model struct {
	port     Port
	month    time.Time
	viewport viewport.Model
	renderer *glamour.TermRenderer
	report   reportdto.ReportOutput
	err      error
	width    int
	height   int
}

func New(port Port, now time.Time) Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	return Model{
		port:     port,
		month:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		viewport: viewport.New(0, 0),
		renderer: r,
	}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderContent())

	case LoadedMsg:
		m.err = msg.Err
		m.report = msg.Report
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			m.month = m.month.AddDate(0, -1, 0)
			return m, m.Reload()
		case "right":
			m.month = m.month.AddDate(0, 1, 0)
			return m, m.Reload()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Relatório") + "  " + theme.Muted.Render(m.report.MonthLabel) +
		theme.Muted.Render("   ←/→: mês  ↑/↓: rolar  :report:archive  :report:share")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

// Month is the month on screen as YYYY-MM.
func (m Model) Month() string { return m.month.Format("2006-01") }

// Text is the report currently shown.
func (m Model) Text() string { return m.report.Text }

func (m Model) Reload() tea.Cmd {
	month := m.Month()
	return func() tea.Msg {
		out, err := m.port.ReportText(context.Background(), reportdto.MonthInput{Month: month})
		return LoadedMsg{Report: out, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 2
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderContent() string {
	if m.err != nil {
		return theme.Error.Render(m.err.Error())
	}
	if m.report.Text == "" {
		return theme.Muted.Render("(sem relatório)")
	}
	md := "```text\n" + m.report.Text + "\n```\n"
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			return rendered
		}
	}
	return strings.TrimSpace(m.report.Text)
}
