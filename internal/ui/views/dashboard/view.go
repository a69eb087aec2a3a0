package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	entrydto "fieldreport/internal/modules/entry/dto"
	reportdto "fieldreport/internal/modules/report/dto"
	"fieldreport/internal/ui/theme"
)

// RecentLimit is how many entries the list shows.
const RecentLimit = 50

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Dashboard(ctx context.Context) (reportdto.DashboardOutput, error)
	ListRecent(ctx context.Context, limit int) ([]entrydto.EntryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Dashboard reportdto.DashboardOutput
	Entries   []entrydto.EntryOutput
	Err       error
}

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry entrydto.EntryOutput
}

func (i entryItem) Title() string {
	return fmt.Sprintf("%s  %dh %02dm", formatDay(i.entry.Date), i.entry.Hours, i.entry.Minutes)
}

func (i entryItem) Description() string {
	if i.entry.Observation == "" {
		return i.entry.Category
	}
	return i.entry.Category + " · " + i.entry.Observation
}

func (i entryItem) FilterValue() string {
	return i.entry.Date + " " + i.entry.Category + " " + i.entry.Observation
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	list    list.Model
	summary viewport.Model
	spinner spinner.Model
	data    reportdto.DashboardOutput
	err     error
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Registros recentes"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, summary: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.data = msg.Dashboard
			items := make([]list.Item, len(msg.Entries))
			for i, e := range msg.Entries {
				items[i] = entryItem{entry: e}
			}
			cmds = append(cmds, m.list.SetItems(items))
		}
		m.summary.SetContent(m.renderSummary())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Carregando…")
	}
	listW := m.width * 5 / 10
	summaryW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	summaryPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(summaryW - 2).
		Height(m.height - 2).
		Render(m.summary.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, summaryPane, listPane)
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedEntryID returns the highlighted entry, if any.
func (m Model) SelectedEntryID() (string, bool) {
	if item, ok := m.list.SelectedItem().(entryItem); ok {
		return item.entry.ID, true
	}
	return "", false
}

// Reload fetches the dashboard and recent entries again.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		data, err := m.port.Dashboard(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		entries, err := m.port.ListRecent(ctx, RecentLimit)
		return LoadedMsg{Dashboard: data, Entries: entries, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 5 / 10
	summaryW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.summary.Width = summaryW - 4
	m.summary.Height = m.height - 4
	m.summary.SetContent(m.renderSummary())
}

func (m Model) renderSummary() string {
	if m.err != nil {
		return theme.Error.Render(m.err.Error())
	}
	d := m.data
	s := d.Summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(s.MonthLabel) + "\n\n")
	sb.WriteString(theme.Muted.Render("horas:          ") + s.HoursLabel + "\n")
	sb.WriteString(theme.Muted.Render("revisitas:      ") + fmt.Sprint(s.ReturnVisits) + "\n")
	sb.WriteString(theme.Muted.Render("estudos:        ") + fmt.Sprint(s.BibleStudies) + "\n")
	if s.Publications > 0 {
		sb.WriteString(theme.Muted.Render("publicações:    ") + fmt.Sprint(s.Publications) + "\n")
	}
	if s.Letters > 0 {
		sb.WriteString(theme.Muted.Render("cartas:         ") + fmt.Sprint(s.Letters) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("meta do mês:    ") + d.GoalLabel + "\n")
	if d.HasGoal {
		barW := m.summary.Width - 8
		if barW > 40 {
			barW = 40
		}
		sb.WriteString(theme.ProgressBar(d.Progress, barW) + fmt.Sprintf(" %.0f%%\n", d.Progress))
	}
	if d.OpenGoal != nil {
		sb.WriteString(theme.Muted.Render("meta aberta:    ") +
			fmt.Sprintf("%s desde %s (%.0fh)\n", d.OpenGoal.Label, formatDay(d.OpenGoal.Start), d.OpenGoal.ExpectedHours))
	}
	sb.WriteString("\n" + d.Comparison.Message + "\n")
	if d.TimerActive {
		sb.WriteString("\n" + theme.Hot.Render("● timer "+d.TimerClock) + "\n")
	}
	return sb.String()
}

// formatDay renders YYYY-MM-DD as DD/MM/YYYY.
func formatDay(day string) string {
	parts := strings.Split(day, "-")
	if len(parts) != 3 {
		return day
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
