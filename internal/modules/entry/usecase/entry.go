package usecase

import (
	"context"

	accountin "fieldreport/internal/modules/account/port/in"
	"fieldreport/internal/modules/entry/domain"
	entrydto "fieldreport/internal/modules/entry/dto"
	entryin "fieldreport/internal/modules/entry/port/in"
	"fieldreport/internal/modules/entry/service"
)

type Interactor struct {
	svc     *service.EntryService
	account accountin.Usecase
}

func NewInteractor(svc *service.EntryService, account accountin.Usecase) entryin.Usecase {
	return &Interactor{svc: svc, account: account}
}

func (i *Interactor) Add(ctx context.Context, input entrydto.AddEntryInput) (entrydto.EntryOutput, error) {
	userID := input.UserID
	if userID == "" {
		current, err := i.currentUserID(ctx)
		if err != nil {
			return entrydto.EntryOutput{}, err
		}
		userID = current
	}
	entry, err := i.svc.Add(ctx, domain.Entry{
		UserID:      userID,
		Date:        input.Date,
		Hours:       input.Hours,
		Minutes:     input.Minutes,
		Category:    domain.Category(input.Category),
		Observation: input.Observation,
		Counters:    fromCountersDTO(input.Counters),
	}, input.PersonName)
	if err != nil {
		return entrydto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) Edit(ctx context.Context, input entrydto.EditEntryInput) (entrydto.EntryOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return entrydto.EntryOutput{}, err
	}
	entry, err := i.svc.Owned(ctx, userID, input.ID)
	if err != nil {
		return entrydto.EntryOutput{}, err
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Hours != nil {
		entry.Hours = *input.Hours
	}
	if input.Minutes != nil {
		entry.Minutes = *input.Minutes
	}
	if input.Category != nil {
		entry.Category = domain.Category(*input.Category)
	}
	if input.Observation != nil {
		entry.Observation = *input.Observation
	}
	if input.Counters != nil {
		entry.Counters = fromCountersDTO(*input.Counters)
	}
	updated, err := i.svc.Update(ctx, entry)
	if err != nil {
		return entrydto.EntryOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return err
	}
	return i.svc.Delete(ctx, userID, id)
}

func (i *Interactor) Get(ctx context.Context, id string) (entrydto.EntryOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return entrydto.EntryOutput{}, err
	}
	entry, err := i.svc.Owned(ctx, userID, id)
	if err != nil {
		return entrydto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) ListRecent(ctx context.Context, limit int) ([]entrydto.EntryOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := i.svc.Recent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return toOutputs(entries), nil
}

func (i *Interactor) ListByUser(ctx context.Context, userID string) ([]entrydto.EntryOutput, error) {
	entries, err := i.svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOutputs(entries), nil
}

func (i *Interactor) Categories(ctx context.Context) ([]string, error) {
	categories, err := i.svc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out, nil
}

func (i *Interactor) currentUserID(ctx context.Context) (string, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func fromCountersDTO(c entrydto.Counters) domain.Counters {
	return domain.Counters{Publications: c.Publications, ReopenedVisits: c.ReopenedVisits, Letters: c.Letters}
}

func toOutput(entry domain.Entry) entrydto.EntryOutput {
	return entrydto.EntryOutput{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Date:        entry.Date,
		Hours:       entry.Hours,
		Minutes:     entry.Minutes,
		Category:    string(entry.Category),
		Observation: entry.Observation,
		Counters: entrydto.Counters{
			Publications:   entry.Counters.Publications,
			ReopenedVisits: entry.Counters.ReopenedVisits,
			Letters:        entry.Counters.Letters,
		},
	}
}

func toOutputs(entries []domain.Entry) []entrydto.EntryOutput {
	out := make([]entrydto.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toOutput(entry))
	}
	return out
}
