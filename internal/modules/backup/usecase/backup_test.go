package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	backupout "fieldreport/internal/modules/backup/adapter/out"
	backupin "fieldreport/internal/modules/backup/port/in"
	"fieldreport/internal/modules/backup/service"
	"fieldreport/internal/modules/backup/usecase"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/state"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func newBackup(t *testing.T) (backupin.Usecase, *state.Repository) {
	t.Helper()
	repo := state.NewRepository(state.NewFileStore(filepath.Join(t.TempDir(), "state.json")), logging.Discard())
	svc := service.NewBackupService(fixedClock{now: time.Date(2026, 8, 9, 10, 0, 0, 0, time.UTC)}, backupout.NewRepositoryArchive(repo))
	return usecase.NewInteractor(svc), repo
}

func seed(t *testing.T, repo *state.Repository) {
	t.Helper()
	start := time.Date(2026, 8, 9, 9, 0, 0, 0, time.UTC)
	goal := 600.0
	err := repo.Update(context.Background(), func(doc *state.Document) error {
		doc.Users = append(doc.Users, state.User{ID: "u1", Nome: "Ana", Tipo: "regular", Email: "ana@example.com", Senha: "hash"})
		doc.SetCurrentUser("u1")
		doc.Metas["u1"] = state.Goal{Tipo: "regular", RegTipo: "anual", RegAnual: &goal}
		doc.Entries = append(doc.Entries, state.Entry{ID: "e1", UserID: "u1", Data: "2026-08-01", Horas: 2, Minutos: 30, Modalidade: "Campo"})
		doc.Revisitas = append(doc.Revisitas, state.ReturnVisit{ID: "r1", UserID: "u1", Nome: "Maria", Historico: []state.HistoryItem{{ID: "h1", Data: "2026-08-02"}}})
		doc.TimerState = &state.TimerState{UserID: "u1", Start: start, Modalidades: []string{"Campo"}, Pessoas: []state.TimerPerson{}}
		return nil
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestExportImportExportIsIdentical(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source, repo := newBackup(t)
	seed(t, repo)

	first, err := source.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if first.Filename != "relatorio-campo-backup-2026-08-09.json" {
		t.Fatalf("unexpected filename %q", first.Filename)
	}

	target, _ := newBackup(t)
	stats, err := target.Import(ctx, first.Data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Users != 1 || stats.Entries != 1 || stats.ReturnVisits != 1 || stats.BibleStudies != 0 {
		t.Fatalf("unexpected import stats: %+v", stats)
	}
	second, err := target.Export(ctx)
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Fatalf("round trip changed the backup:\n%s\n---\n%s", first.Data, second.Data)
	}
}

func TestImportFillsMissingContainers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, repo := newBackup(t)

	if _, err := uc.Import(ctx, []byte(`{"users":[{"id":"u9","nome":"Lia"}],"currentUserId":"u9"}`)); err != nil {
		t.Fatalf("import: %v", err)
	}
	doc, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if doc.CurrentUser() != "u9" || doc.Entries == nil || len(doc.Modalidades) == 0 || doc.Metas == nil {
		t.Fatalf("expected normalised document, got %+v", doc)
	}
}

func TestInvalidBackupLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, repo := newBackup(t)
	seed(t, repo)
	before, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, raw := range []string{
		`not json`,
		`{"entries":[]}`,
		`{"users":{"id":"u1"}}`,
		`{"users":[],"entries":"oops"}`,
	} {
		_, err := uc.Import(ctx, []byte(raw))
		if !errors.Is(err, apperrors.ErrInvalidBackup) {
			t.Fatalf("expected invalid backup for %q, got %v", raw, err)
		}
	}
	_, err = uc.Import(ctx, []byte(`{"users":"x"}`))
	if err == nil || !strings.Contains(err.Error(), "Arquivo de backup inválido") {
		t.Fatalf("expected user-facing message, got %v", err)
	}

	after, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.Equal(before.Data, after.Data) {
		t.Fatalf("rejected import changed state")
	}
}
