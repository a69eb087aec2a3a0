package service

import (
	"context"
	"errors"
	"fmt"

	"fieldreport/internal/modules/backup/domain"
	backupout "fieldreport/internal/modules/backup/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
)

type BackupService struct {
	clock   clock.Clock
	archive backupout.StateArchive
}

func NewBackupService(clock clock.Clock, archive backupout.StateArchive) *BackupService {
	return &BackupService{clock: clock, archive: archive}
}

// Export returns the full state and the file name it should be saved under.
func (s *BackupService) Export(ctx context.Context) (string, []byte, error) {
	raw, err := s.archive.Dump(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("export state: %w", err)
	}
	return domain.Filename(s.clock.Now()), raw, nil
}

func (s *BackupService) Import(ctx context.Context, raw []byte) (backupout.RestoreStats, error) {
	if err := domain.Validate(raw); err != nil {
		logging.FromContext(ctx).Warn("backup rejected", "error", err)
		return backupout.RestoreStats{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidBackup, err)
	}
	stats, err := s.archive.Restore(ctx, raw)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			return backupout.RestoreStats{}, err
		}
		logging.FromContext(ctx).Warn("backup rejected", "error", err)
		return backupout.RestoreStats{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidBackup, err)
	}
	logging.FromContext(ctx).Info("backup imported", "users", stats.Users, "entries", stats.Entries)
	return stats, nil
}
