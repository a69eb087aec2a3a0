package usecase

import (
	"context"

	"fieldreport/internal/modules/backup/dto"
	backupin "fieldreport/internal/modules/backup/port/in"
	"fieldreport/internal/modules/backup/service"
)

type Interactor struct {
	svc *service.BackupService
}

func NewInteractor(svc *service.BackupService) backupin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context) (dto.ExportOutput, error) {
	name, raw, err := i.svc.Export(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Filename: name, Data: raw}, nil
}

func (i *Interactor) Import(ctx context.Context, raw []byte) (dto.ImportOutput, error) {
	stats, err := i.svc.Import(ctx, raw)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{
		Users:        stats.Users,
		Entries:      stats.Entries,
		ReturnVisits: stats.ReturnVisits,
		BibleStudies: stats.BibleStudies,
	}, nil
}
