package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "fieldreport/internal/modules/account/adapter/in"
	accountoutadapter "fieldreport/internal/modules/account/adapter/out"
	accountservice "fieldreport/internal/modules/account/service"
	accountusecase "fieldreport/internal/modules/account/usecase"
	backupinadapter "fieldreport/internal/modules/backup/adapter/in"
	backupoutadapter "fieldreport/internal/modules/backup/adapter/out"
	backupservice "fieldreport/internal/modules/backup/service"
	backupusecase "fieldreport/internal/modules/backup/usecase"
	contactinadapter "fieldreport/internal/modules/contact/adapter/in"
	contactoutadapter "fieldreport/internal/modules/contact/adapter/out"
	contactservice "fieldreport/internal/modules/contact/service"
	contactusecase "fieldreport/internal/modules/contact/usecase"
	entryinadapter "fieldreport/internal/modules/entry/adapter/in"
	entryoutadapter "fieldreport/internal/modules/entry/adapter/out"
	entryservice "fieldreport/internal/modules/entry/service"
	entryusecase "fieldreport/internal/modules/entry/usecase"
	goalinadapter "fieldreport/internal/modules/goal/adapter/in"
	goaloutadapter "fieldreport/internal/modules/goal/adapter/out"
	goalservice "fieldreport/internal/modules/goal/service"
	goalusecase "fieldreport/internal/modules/goal/usecase"
	mirrorinadapter "fieldreport/internal/modules/mirror/adapter/in"
	mirroroutadapter "fieldreport/internal/modules/mirror/adapter/out"
	mirrorout "fieldreport/internal/modules/mirror/port/out"
	mirrorservice "fieldreport/internal/modules/mirror/service"
	mirrorusecase "fieldreport/internal/modules/mirror/usecase"
	reportinadapter "fieldreport/internal/modules/report/adapter/in"
	reportoutadapter "fieldreport/internal/modules/report/adapter/out"
	reportservice "fieldreport/internal/modules/report/service"
	reportusecase "fieldreport/internal/modules/report/usecase"
	timerinadapter "fieldreport/internal/modules/timer/adapter/in"
	timeroutadapter "fieldreport/internal/modules/timer/adapter/out"
	timerout "fieldreport/internal/modules/timer/port/out"
	timerservice "fieldreport/internal/modules/timer/service"
	timerusecase "fieldreport/internal/modules/timer/usecase"
	"fieldreport/internal/platform/clock"
	"fieldreport/internal/platform/config"
	"fieldreport/internal/platform/id"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/sqlitedb"
	"fieldreport/internal/platform/state"
	uiapp "fieldreport/internal/ui/app"
	"fieldreport/internal/ui/picker"
)

const (
	version       = "0.1.0"
	renderWidth   = 80
	mirrorTimeout = 15 * time.Second
)

type App struct {
	Config config.Config
	Logger *slog.Logger
	Clock  clock.Clock

	AccountCLI accountinadapter.CLIHandler
	EntryCLI   entryinadapter.CLIHandler
	ContactCLI contactinadapter.CLIHandler
	GoalCLI    goalinadapter.CLIHandler
	TimerCLI   timerinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	BackupCLI  backupinadapter.CLIHandler
	MirrorCLI  mirrorinadapter.CLIHandler

	closers []io.Closer
}

// Options carries what differs between the CLI and tests.
type Options struct {
	// Selector answers contact prompts for timer starts that omit a person.
	// Defaults to the terminal picker on stdin/stdout.
	Selector timerout.ContactSelector
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

func New(cfg config.Config, opts Options) (*App, error) {
	logger := logging.New(logging.Config{
		Service: "fieldreport",
		Version: version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  opts.LogOutput,
	})
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	clk := clock.Zoned{Clock: clock.SystemClock{}, Loc: loc}
	ids := id.NewULID()

	selector := opts.Selector
	if selector == nil {
		selector = picker.NewSelector(os.Stdin, os.Stdout)
	}

	repo := state.NewRepository(state.NewFileStore(cfg.StatePath), logger)
	db, err := sqlitedb.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	app := &App{Config: cfg, Logger: logger, Clock: clk, closers: []io.Closer{db}}

	accountUC := accountusecase.NewInteractor(accountservice.NewAccountService(
		ids,
		accountoutadapter.NewStateUserStore(repo),
		accountoutadapter.NewStateElderStore(repo),
		accountoutadapter.NewArgon2Hasher(),
	))

	entryUC := entryusecase.NewInteractor(
		entryservice.NewEntryService(clk, ids, entryoutadapter.NewStateEntryStore(repo)),
		accountUC,
	)

	contactUC := contactusecase.NewInteractor(
		contactservice.NewContactService(clk, ids, contactoutadapter.NewStateContactStore(repo), contactoutadapter.NewEntryVisitLogger(entryUC)),
		accountUC,
	)

	goalUC := goalusecase.NewInteractor(
		goalservice.NewGoalService(clk, goaloutadapter.NewStateGoalStore(repo)),
		accountUC,
	)

	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(
			clk,
			timeroutadapter.NewStateSessionStore(repo),
			timeroutadapter.NewEntryLogger(entryUC),
			timeroutadapter.NewLogNotifier(logger),
		),
		clk,
		accountUC,
		contactUC,
		selector,
	)

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(
			clk,
			reportoutadapter.NewMarkdownArchive(cfg.ReportsPath),
			reportoutadapter.NewSQLiteTotalsProjector(db),
			reportoutadapter.NewGlamourRenderer(renderWidth),
		),
		accountUC,
		entryUC,
		goalUC,
		timerUC,
	)

	backupUC := backupusecase.NewInteractor(
		backupservice.NewBackupService(clk, backupoutadapter.NewRepositoryArchive(repo)),
	)

	remote, err := app.newMirrorRemote(cfg, db, clk)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	mirrorSvc := mirrorservice.NewMirrorService(clk, repo, remote)
	if remote != nil && cfg.AutoSync {
		repo.OnSaved("mirror", mirrorSvc.AutoSyncHook())
	}
	mirrorUC := mirrorusecase.NewInteractor(mirrorSvc, accountUC)

	app.AccountCLI = accountinadapter.NewCLIHandler(accountUC)
	app.EntryCLI = entryinadapter.NewCLIHandler(entryUC)
	app.ContactCLI = contactinadapter.NewCLIHandler(contactUC)
	app.GoalCLI = goalinadapter.NewCLIHandler(goalUC)
	app.TimerCLI = timerinadapter.NewCLIHandler(timerUC)
	app.ReportCLI = reportinadapter.NewCLIHandler(reportUC)
	app.BackupCLI = backupinadapter.NewCLIHandler(backupUC)
	app.MirrorCLI = mirrorinadapter.NewCLIHandler(mirrorUC)
	return app, nil
}

// newMirrorRemote picks the remote from the mirror URL: empty disables the
// mirror, sqlite:// names a database file, anything else is an HTTP base URL.
func (a *App) newMirrorRemote(cfg config.Config, local *sql.DB, clk clock.Clock) (mirrorout.Remote, error) {
	raw := strings.TrimSpace(cfg.MirrorURL)
	switch {
	case raw == "":
		return nil, nil
	case raw == "sqlite://":
		return mirroroutadapter.NewSQLiteRemote(local, clk), nil
	case strings.HasPrefix(raw, "sqlite://"):
		db, err := sqlitedb.Open(strings.TrimPrefix(raw, "sqlite://"))
		if err != nil {
			return nil, fmt.Errorf("open mirror database: %w", err)
		}
		a.closers = append(a.closers, db)
		return mirroroutadapter.NewSQLiteRemote(db, clk), nil
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return mirroroutadapter.NewHTTPRemote(raw, cfg.MirrorToken, &http.Client{Timeout: mirrorTimeout}), nil
	default:
		return nil, fmt.Errorf("unsupported mirror url %q", raw)
	}
}

// Close releases the databases opened by New.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	ports := uiapp.Ports{
		Entries:  app.EntryCLI,
		Reports:  app.ReportCLI,
		Timer:    app.TimerCLI,
		Contacts: app.ContactCLI,
	}
	if app.MirrorCLI.Enabled() {
		ports.Mirror = app.MirrorCLI
	}
	model := uiapp.NewModel(ports, app.Clock.Now())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
