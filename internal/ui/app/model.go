package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	contactdomain "fieldreport/internal/modules/contact/domain"
	contactdto "fieldreport/internal/modules/contact/dto"
	entrydto "fieldreport/internal/modules/entry/dto"
	mirrordto "fieldreport/internal/modules/mirror/dto"
	reportdto "fieldreport/internal/modules/report/dto"
	timerdto "fieldreport/internal/modules/timer/dto"
	timerout "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/ui/components"
	"fieldreport/internal/ui/picker"
	"fieldreport/internal/ui/theme"
	contactsview "fieldreport/internal/ui/views/contacts"
	dashboardview "fieldreport/internal/ui/views/dashboard"
	reportview "fieldreport/internal/ui/views/report"
	timerview "fieldreport/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type entryPort interface {
	ListRecent(ctx context.Context, limit int) ([]entrydto.EntryOutput, error)
}

type reportPort interface {
	Dashboard(ctx context.Context) (reportdto.DashboardOutput, error)
	Text(ctx context.Context, month string) (reportdto.ReportOutput, error)
	Archive(ctx context.Context, month string) (reportdto.ArchiveOutput, error)
	Share(ctx context.Context, month, elderID string) (string, error)
}

type timerPort interface {
	timerview.Port
	Start(ctx context.Context, categories []string, returnVisitID, studyID string) (timerdto.SessionOutput, error)
}

type contactPort interface {
	List(ctx context.Context, kind string) ([]contactdto.ContactOutput, error)
	Add(ctx context.Context, input contactdto.AddContactInput) (contactdto.ContactOutput, error)
	RecordVisit(ctx context.Context, kind, id, date, note string) (contactdto.RecordVisitOutput, error)
}

type mirrorPort interface {
	Enabled() bool
	Push(ctx context.Context) (mirrordto.SyncOutput, error)
}

// Ports bundles what the app needs; Mirror may be nil.
type Ports struct {
	Entries  entryPort
	Reports  reportPort
	Timer    timerPort
	Contacts contactPort
	Mirror   mirrorPort
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabTimer
	tabContacts
	tabReport
	tabCount
)

var tabLabels = [tabCount]string{
	"Painel", "Timer", "Contatos", "Relatório",
}

// ─── async messages ───────────────────────────────────────────────────────────

type candidatesMsg struct {
	kind       string
	candidates []timerout.Candidate
	err        error
}

type personResolvedMsg struct {
	kind string
	id   string
	err  error
}

type timerStartedMsg struct {
	session timerdto.SessionOutput
	err     error
}

type statusMsg struct {
	text string
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Stop    key.Binding
	Kind    key.Binding
	Month   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próxima aba")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ajuda")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "comandos")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "sair")),
		Toggle:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pausar timer")),
		Stop:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "parar timer")),
		Kind:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "revisitas/estudos")),
		Month:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "mês do relatório")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Palette},
		{k.Toggle, k.Stop, k.Kind, k.Month},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// pendingStart collects the people a timer start still needs.
type pendingStart struct {
	categories []string
	needed     []string
	people     map[string]string
}

// Model is the root Bubble Tea model. It owns tab routing, the help overlay,
// the command palette and the contact picker. Business logic is delegated to
// the ports; rendering to the sub-views.
type Model struct {
	ports Ports

	dashView    dashboardview.Model
	timerView   timerview.Model
	contactView contactsview.Model
	reportView  reportview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	picker    *picker.Model
	pending   *pendingStart
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ports Ports, now time.Time) Model {
	return Model{
		ports:       ports,
		dashView:    dashboardview.New(dashboardBridge{entries: ports.Entries, reports: ports.Reports}),
		timerView:   timerview.New(ports.Timer),
		contactView: contactsview.New(ports.Contacts),
		reportView:  reportview.New(reportBridge{p: ports.Reports}, now),
		activeTab:   tabDashboard,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "pronto",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.timerView.Init(),
		m.contactView.Init(),
		m.reportView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "pronto"
		return m, nil

	case candidatesMsg:
		if msg.err != nil {
			m.pending = nil
			m.status = "contatos: " + msg.err.Error()
			return m, nil
		}
		p := picker.New(msg.kind, msg.candidates)
		p.SetSize(min(m.width-4, 70), max(m.height-6, 10))
		m.picker = &p
		return m, nil

	case picker.PickedMsg:
		m.picker = nil
		return m, m.resolvePersonCmd(msg.Kind, msg.Selection)

	case picker.CancelledMsg:
		m.picker = nil
		m.pending = nil
		m.status = "início do timer cancelado"
		return m, nil

	case personResolvedMsg:
		if msg.err != nil || m.pending == nil {
			m.pending = nil
			if msg.err != nil {
				m.status = "timer: " + msg.err.Error()
			}
			return m, nil
		}
		m.pending.people[msg.kind] = msg.id
		return m, m.advanceStart()

	case timerStartedMsg:
		m.pending = nil
		if msg.err != nil {
			m.status = "timer: " + msg.err.Error()
			return m, nil
		}
		m.status = "timer iniciado: " + strings.Join(msg.session.Categories, ", ")
		m.activeTab = tabTimer
		return m, tea.Batch(m.timerView.Refresh(), m.dashView.Reload())

	case statusMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = msg.text
		}
		return m, m.dashView.Reload()

	// Timer results always reach the timer view, whatever tab is active.
	case timerview.StoppedMsg, timerview.CancelledMsg, timerview.ToggledMsg, timerview.TickedMsg:
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		if _, stopped := msg.(timerview.StoppedMsg); stopped {
			cmd = tea.Batch(cmd, m.dashView.Reload())
		}
		return m, cmd

	case dashboardview.LoadedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd

	case contactsview.LoadedMsg:
		var cmd tea.Cmd
		m.contactView, cmd = m.contactView.Update(msg)
		return m, cmd

	case reportview.LoadedMsg:
		var cmd tea.Cmd
		m.reportView, cmd = m.reportView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.picker != nil {
			var cmd tea.Cmd
			*m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabContacts:
		m.contactView, tabCmd = m.contactView.Update(msg)
	case tabReport:
		m.reportView, tabCmd = m.reportView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	// The timer view polls on its own clock even when hidden.
	if _, ok := msg.(tea.KeyMsg); !ok && m.activeTab != tabTimer {
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.picker != nil:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.picker.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabTimer:
		return m.timerView.View()
	case tabContacts:
		return m.contactView.View()
	case tabReport:
		return m.reportView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "fieldreport  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.timerView.Active() {
		left = theme.Hot.Render("● "+m.timerView.Session().Display) + "  " + left
	}
	right := theme.Muted.Render("?:ajuda  tab:aba  ::comandos  q:sair")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "timer:start":
		categories := splitCategories(rest)
		if len(categories) == 0 {
			m.status = "uso: timer:start <modalidade>[,<modalidade>…]"
			return m, nil
		}
		pending := &pendingStart{categories: categories, people: map[string]string{}}
		for _, kind := range []contactdomain.Kind{contactdomain.KindReturnVisit, contactdomain.KindBibleStudy} {
			for _, c := range categories {
				if c == kind.Category() {
					pending.needed = append(pending.needed, string(kind))
					break
				}
			}
		}
		m.pending = pending
		return m, m.advanceStart()

	case "timer:pause":
		return m, m.timerCmd(func(ctx context.Context) tea.Msg {
			session, err := m.ports.Timer.Toggle(ctx)
			return timerview.ToggledMsg{Session: session, Err: err}
		})

	case "timer:stop":
		return m, m.timerCmd(func(ctx context.Context) tea.Msg {
			out, err := m.ports.Timer.Stop(ctx, timerdto.Counters{})
			return timerview.StoppedMsg{Out: out, Err: err}
		})

	case "timer:cancel":
		return m, m.timerCmd(func(ctx context.Context) tea.Msg {
			return timerview.CancelledMsg{Err: m.ports.Timer.Cancel(ctx)}
		})

	case "visit":
		selected, ok := m.contactView.Selected()
		if m.activeTab != tabContacts || !ok {
			m.status = "selecione um contato na aba Contatos"
			return m, nil
		}
		return m, m.recordVisitCmd(selected, rest)

	case "report:archive":
		month := m.reportView.Month()
		return m, func() tea.Msg {
			out, err := m.ports.Reports.Archive(context.Background(), month)
			return statusMsg{text: "relatório arquivado em " + out.Path, err: err}
		}

	case "report:share":
		month := m.reportView.Month()
		elderID := rest
		return m, func() tea.Msg {
			link, err := m.ports.Reports.Share(context.Background(), month, elderID)
			return statusMsg{text: link, err: err}
		}

	case "mirror:push":
		if m.ports.Mirror == nil || !m.ports.Mirror.Enabled() {
			m.status = "espelho remoto não configurado"
			return m, nil
		}
		return m, func() tea.Msg {
			out, err := m.ports.Mirror.Push(context.Background())
			return statusMsg{text: fmt.Sprintf("sincronizado: %d registros", out.Entries), err: err}
		}

	case "refresh":
		return m, tea.Batch(m.dashView.Reload(), m.contactView.Reload(), m.reportView.Reload(), m.timerView.Refresh())

	default:
		m.status = "comando desconhecido: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.Filtering()
	case tabContacts:
		return m.contactView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.timerView, _ = m.timerView.Update(sz)
	m.contactView, _ = m.contactView.Update(sz)
	m.reportView, _ = m.reportView.Update(sz)
	if m.picker != nil {
		m.picker.SetSize(min(m.width-4, 70), max(m.height-6, 10))
	}
}

func splitCategories(raw string) []string {
	var out []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ─── async commands ───────────────────────────────────────────────────────────

// advanceStart opens the picker for the next kind still missing a person, or
// starts the timer once every kind is covered.
func (m Model) advanceStart() tea.Cmd {
	pending := m.pending
	for _, kind := range pending.needed {
		if _, ok := pending.people[kind]; ok {
			continue
		}
		return func() tea.Msg {
			contacts, err := m.ports.Contacts.List(context.Background(), kind)
			candidates := make([]timerout.Candidate, 0, len(contacts))
			for _, c := range contacts {
				candidates = append(candidates, timerout.Candidate{ID: c.ID, Name: c.Name, Subtitle: c.Address})
			}
			return candidatesMsg{kind: kind, candidates: candidates, err: err}
		}
	}
	categories := pending.categories
	returnVisitID := pending.people[string(contactdomain.KindReturnVisit)]
	studyID := pending.people[string(contactdomain.KindBibleStudy)]
	return func() tea.Msg {
		session, err := m.ports.Timer.Start(context.Background(), categories, returnVisitID, studyID)
		return timerStartedMsg{session: session, err: err}
	}
}

func (m Model) resolvePersonCmd(kind string, selection timerout.Selection) tea.Cmd {
	if selection.ContactID != "" {
		return func() tea.Msg { return personResolvedMsg{kind: kind, id: selection.ContactID} }
	}
	return func() tea.Msg {
		created, err := m.ports.Contacts.Add(context.Background(), contactdto.AddContactInput{Kind: kind, Name: selection.NewName})
		return personResolvedMsg{kind: kind, id: created.ID, err: err}
	}
}

func (m Model) recordVisitCmd(contact contactdto.ContactOutput, note string) tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		out, err := m.ports.Contacts.RecordVisit(context.Background(), contact.Kind, contact.ID, "", note)
		return statusMsg{text: fmt.Sprintf("visita registrada: %s (+%d min)", out.Contact.Name, out.Minutes), err: err}
	}, m.contactView.Reload())
}

func (m Model) timerCmd(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(context.Background()) }
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type dashboardBridge struct {
	entries entryPort
	reports reportPort
}

func (b dashboardBridge) Dashboard(ctx context.Context) (reportdto.DashboardOutput, error) {
	return b.reports.Dashboard(ctx)
}
func (b dashboardBridge) ListRecent(ctx context.Context, limit int) ([]entrydto.EntryOutput, error) {
	return b.entries.ListRecent(ctx, limit)
}

type reportBridge struct{ p reportPort }

func (b reportBridge) ReportText(ctx context.Context, input reportdto.MonthInput) (reportdto.ReportOutput, error) {
	return b.p.Text(ctx, input.Month)
}
