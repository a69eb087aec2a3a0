package usecase

import (
	"context"

	accountin "fieldreport/internal/modules/account/port/in"
	"fieldreport/internal/modules/mirror/domain"
	"fieldreport/internal/modules/mirror/dto"
	mirrorin "fieldreport/internal/modules/mirror/port/in"
	"fieldreport/internal/modules/mirror/service"
)

type Interactor struct {
	svc     *service.MirrorService
	account accountin.Usecase
}

func NewInteractor(svc *service.MirrorService, account accountin.Usecase) mirrorin.Usecase {
	return &Interactor{svc: svc, account: account}
}

func (i *Interactor) Enabled() bool {
	return i.svc.Enabled()
}

func (i *Interactor) Push(ctx context.Context) (dto.SyncOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	doc, err := i.svc.Push(ctx, user.ID)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return toOutput(user.ID, doc, true), nil
}

func (i *Interactor) Pull(ctx context.Context) (dto.SyncOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	doc, found, err := i.svc.Pull(ctx, user.ID)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return toOutput(user.ID, doc, found), nil
}

func (i *Interactor) Watch(ctx context.Context, schedule string) error {
	return i.svc.Watch(ctx, schedule, func(ctx context.Context) error {
		_, err := i.Push(ctx)
		return err
	})
}

func toOutput(userID string, doc domain.Document, found bool) dto.SyncOutput {
	return dto.SyncOutput{
		UserID:       userID,
		Entries:      len(doc.Entries),
		ReturnVisits: len(doc.Revisitas),
		BibleStudies: len(doc.Estudos),
		LastSync:     doc.LastSync,
		Found:        found,
	}
}
