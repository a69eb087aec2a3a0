package bootstrap_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fieldreport/internal/bootstrap"
	timerdto "fieldreport/internal/modules/timer/dto"
	timerout "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/platform/config"
	apperrors "fieldreport/internal/platform/errors"
)

type scriptedSelector struct {
	selection timerout.Selection
	asked     []string
}

func (s *scriptedSelector) SelectContact(_ context.Context, kind string, _ []timerout.Candidate) (timerout.Selection, error) {
	s.asked = append(s.asked, kind)
	return s.selection, nil
}

func newApp(t *testing.T, dir string, mutate func(*config.Config), selector timerout.ContactSelector) *bootstrap.App {
	t.Helper()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if mutate != nil {
		mutate(&cfg)
	}
	app, err := bootstrap.New(cfg, bootstrap.Options{Selector: selector, LogOutput: io.Discard})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestEndToEndServiceDay(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mirrorDB := filepath.Join(dir, "mirror", "mirror.db")
	selector := &scriptedSelector{selection: timerout.Selection{NewName: "Maria"}}
	app := newApp(t, dir, func(cfg *config.Config) {
		cfg.MirrorURL = "sqlite://" + mirrorDB
		cfg.AutoSync = true
	}, selector)
	ctx := context.Background()

	if _, err := app.AccountCLI.SignUp(ctx, "Ana Souza", "Centro", "publicador", "ana@example.com", "segredo"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	session, err := app.TimerCLI.Start(ctx, []string{"Revisitas"}, "", "")
	if err != nil {
		t.Fatalf("start timer: %v", err)
	}
	if len(selector.asked) != 1 || selector.asked[0] != "revisita" {
		t.Fatalf("expected one return visit prompt, got %v", selector.asked)
	}
	if len(session.People) != 1 || session.People[0].Name != "Maria" {
		t.Fatalf("unexpected session people: %+v", session.People)
	}
	visits, err := app.ContactCLI.List(ctx, "revisita")
	if err != nil || len(visits) != 1 {
		t.Fatalf("expected the new return visit to be registered, got %d (%v)", len(visits), err)
	}

	stopped, err := app.TimerCLI.Stop(ctx, timerdto.Counters{Publications: 2})
	if err != nil {
		t.Fatalf("stop timer: %v", err)
	}
	if stopped.Hours != 0 || stopped.Minutes < 1 || stopped.Category != "Revisitas" {
		t.Fatalf("unexpected stop output: %+v", stopped)
	}
	if _, err := app.TimerCLI.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected no active timer after stop, got %v", err)
	}

	report, err := app.ReportCLI.Text(ctx, "")
	if err != nil {
		t.Fatalf("report text: %v", err)
	}
	if !strings.Contains(report.Text, "Publicador: Ana Souza") || !strings.Contains(report.Text, "Participei no ministério: Sim") {
		t.Fatalf("unexpected report text:\n%s", report.Text)
	}
	archived, err := app.ReportCLI.Archive(ctx, "")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !strings.HasPrefix(archived.Path, filepath.Join(dir, "reports")) {
		t.Fatalf("archive outside reports dir: %s", archived.Path)
	}

	backupPath, err := app.BackupCLI.Export(ctx, filepath.Join(dir, "exports"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	// Auto-sync pushed every save; a fresh install pulls the same records.
	other := newApp(t, t.TempDir(), func(cfg *config.Config) {
		cfg.MirrorURL = "sqlite://" + mirrorDB
	}, selector)
	if _, err := other.BackupCLI.Import(ctx, backupPath); err != nil {
		t.Fatalf("import into second install: %v", err)
	}
	pulled, err := other.MirrorCLI.Pull(ctx)
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if !pulled.Found || pulled.Entries != 1 || pulled.ReturnVisits != 1 {
		t.Fatalf("unexpected pull output: %+v", pulled)
	}
}

func TestMirrorDisabledWithoutURL(t *testing.T) {
	t.Parallel()
	app := newApp(t, t.TempDir(), nil, &scriptedSelector{})
	if app.MirrorCLI.Enabled() {
		t.Fatalf("mirror must be disabled without a url")
	}
	if _, err := app.AccountCLI.SignUp(context.Background(), "Ana", "", "publicador", "ana@example.com", "x"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := app.MirrorCLI.Push(context.Background()); !errors.Is(err, apperrors.ErrMirrorDisabled) {
		t.Fatalf("expected disabled mirror, got %v", err)
	}
}

func TestUnsupportedMirrorURL(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.MirrorURL = "ftp://example.com"
	if _, err := bootstrap.New(cfg, bootstrap.Options{Selector: &scriptedSelector{}, LogOutput: io.Discard}); err == nil {
		t.Fatalf("expected unsupported mirror url to fail")
	}
}
