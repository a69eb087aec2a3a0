package timer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdto "fieldreport/internal/modules/timer/dto"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Status(ctx context.Context) (timerdto.SessionOutput, error)
	Tick(ctx context.Context) (timerdto.TickOutput, error)
	Toggle(ctx context.Context) (timerdto.SessionOutput, error)
	Stop(ctx context.Context, counters timerdto.Counters) (timerdto.StopOutput, error)
	Cancel(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type TickedMsg struct {
	Out timerdto.TickOutput
	Err error
}

type ToggledMsg struct {
	Session timerdto.SessionOutput
	Err     error
}

// StoppedMsg is emitted once a stop has been logged as an entry.
type StoppedMsg struct {
	Out timerdto.StopOutput
	Err error
}

type CancelledMsg struct{ Err error }

// ─── keys ────────────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle key.Binding
	Stop   key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pausar/retomar")),
		Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "parar e salvar")),
		Cancel: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "descartar")),
	}
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle, k.Stop, k.Cancel} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// noticeTTL is how long an hour banner stays on screen.
const noticeTTL = 8 * time.Second

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows the live session clock. It polls Tick once a second so hour
// notices fire while the view is open.
type Model struct {
	port        Port
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	session     timerdto.SessionOutput
	active      bool
	notice      string
	noticeUntil time.Time
	status      string
	width       int
	height      int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Pulse
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)
	return Model{port: port, keys: defaultKeys(), help: help.New(), spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), scheduleTick(), m.spinner.Tick)
}

// Active reports whether a session is running for the current user.
func (m Model) Active() bool { return m.active }

func (m Model) Session() timerdto.SessionOutput { return m.session }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if !m.noticeUntil.IsZero() && time.Time(msg).After(m.noticeUntil) {
			m.notice = ""
			m.noticeUntil = time.Time{}
		}
		return m, tea.Batch(m.tickCmd(), scheduleTick())

	case TickedMsg:
		switch {
		case msg.Err == nil:
			m.active = true
			m.session = msg.Out.Session
			if msg.Out.Notice != "" {
				m.notice = msg.Out.Notice
				m.noticeUntil = time.Now().Add(noticeTTL)
			}
		case errors.Is(msg.Err, apperrors.ErrNoActiveTimer), errors.Is(msg.Err, apperrors.ErrTimerOwnedByOtherUser), errors.Is(msg.Err, apperrors.ErrNoCurrentUser):
			m.active = false
			m.session = timerdto.SessionOutput{}
		default:
			m.status = msg.Err.Error()
		}

	case ToggledMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.session = msg.Session
		if msg.Session.Paused {
			m.status = "pausado"
		} else {
			m.status = "retomado"
		}

	case StoppedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.active = false
		m.session = timerdto.SessionOutput{}
		m.status = fmt.Sprintf("registrado: %dh %02dm em %s", msg.Out.Hours, msg.Out.Minutes, msg.Out.Category)

	case CancelledMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.active = false
		m.session = timerdto.SessionOutput{}
		m.status = "sessão descartada"

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggleCmd()
		case key.Matches(msg, m.keys.Stop):
			return m, m.stopCmd()
		case key.Matches(msg, m.keys.Cancel):
			return m, m.cancelCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	if m.notice != "" {
		sb.WriteString(theme.Notice.Render(m.notice) + "\n\n")
	}
	if !m.active {
		sb.WriteString(theme.Title.Render("Timer") + "\n\n")
		sb.WriteString(theme.Muted.Render("Nenhuma sessão em andamento. Use :timer:start <modalidades>"))
	} else {
		state := m.spinner.View() + " em andamento"
		if m.session.Paused {
			state = theme.Hot.Render("⏸ pausado")
		}
		sb.WriteString(theme.Title.Render("Timer") + "  " + state + "\n\n")
		sb.WriteString(theme.Clock.Render(m.session.Display) + "\n\n")
		sb.WriteString(theme.Muted.Render("início:      ") + m.session.Start.Format("02/01/2006 15:04") + "\n")
		sb.WriteString(theme.Muted.Render("modalidades: ") + strings.Join(m.session.Categories, ", ") + "\n")
		for _, p := range m.session.People {
			label := "revisita:    "
			if p.Kind == "estudo" {
				label = "estudo:      "
			}
			sb.WriteString(theme.Muted.Render(label) + p.Name + "\n")
		}
		sb.WriteString("\n" + m.help.View(m.keys))
	}
	if m.status != "" {
		sb.WriteString("\n\n" + theme.Muted.Render(m.status))
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}

// Refresh asks for the session state right away.
func (m Model) Refresh() tea.Cmd { return m.tickCmd() }

// ─── private ─────────────────────────────────────────────────────────────────

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Tick(context.Background())
		return TickedMsg{Out: out, Err: err}
	}
}

func (m Model) toggleCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.Toggle(context.Background())
		return ToggledMsg{Session: session, Err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background(), timerdto.Counters{})
		return StoppedMsg{Out: out, Err: err}
	}
}

func (m Model) cancelCmd() tea.Cmd {
	return func() tea.Msg {
		return CancelledMsg{Err: m.port.Cancel(context.Background())}
	}
}
