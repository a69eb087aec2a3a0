package out

import (
	"context"

	backupout "fieldreport/internal/modules/backup/port/out"
	"fieldreport/internal/platform/state"
)

type RepositoryArchive struct {
	repo *state.Repository
}

func NewRepositoryArchive(repo *state.Repository) backupout.StateArchive {
	return &RepositoryArchive{repo: repo}
}

func (a *RepositoryArchive) Dump(ctx context.Context) ([]byte, error) {
	doc, err := a.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return state.Encode(doc)
}

func (a *RepositoryArchive) Restore(ctx context.Context, raw []byte) (backupout.RestoreStats, error) {
	doc, err := state.Decode(raw)
	if err != nil {
		return backupout.RestoreStats{}, err
	}
	if err := a.repo.Replace(ctx, doc); err != nil {
		return backupout.RestoreStats{}, err
	}
	return backupout.RestoreStats{
		Users:        len(doc.Users),
		Entries:      len(doc.Entries),
		ReturnVisits: len(doc.Revisitas),
		BibleStudies: len(doc.Estudos),
	}, nil
}
