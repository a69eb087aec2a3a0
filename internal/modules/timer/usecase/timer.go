package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	accountin "fieldreport/internal/modules/account/port/in"
	contactdomain "fieldreport/internal/modules/contact/domain"
	contactdto "fieldreport/internal/modules/contact/dto"
	contactin "fieldreport/internal/modules/contact/port/in"
	"fieldreport/internal/modules/timer/domain"
	timerdto "fieldreport/internal/modules/timer/dto"
	timerin "fieldreport/internal/modules/timer/port/in"
	timerout "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/modules/timer/service"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
)

type Interactor struct {
	svc      *service.TimerService
	clock    clock.Clock
	account  accountin.Usecase
	contacts contactin.Usecase
	selector timerout.ContactSelector
}

func NewInteractor(svc *service.TimerService, clock clock.Clock, account accountin.Usecase, contacts contactin.Usecase, selector timerout.ContactSelector) timerin.Usecase {
	return &Interactor{svc: svc, clock: clock, account: account, contacts: contacts, selector: selector}
}

func (i *Interactor) Start(ctx context.Context, input timerdto.StartInput) (timerdto.SessionOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	existing, ok, err := i.svc.Existing(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	if ok {
		if existing.UserID == user.ID {
			return timerdto.SessionOutput{}, apperrors.ErrActiveTimerExists
		}
		return timerdto.SessionOutput{}, apperrors.ErrTimerOwnedByOtherUser
	}
	categories := trimCategories(input.Categories)
	if len(categories) == 0 {
		return timerdto.SessionOutput{}, apperrors.ErrNoCategory
	}

	people := make([]domain.Person, 0, len(input.People))
	for _, p := range input.People {
		person, err := i.resolvePerson(ctx, p.Kind, p.ID)
		if err != nil {
			return timerdto.SessionOutput{}, err
		}
		people = append(people, person)
	}
	for _, kind := range []contactdomain.Kind{contactdomain.KindReturnVisit, contactdomain.KindBibleStudy} {
		if !contains(categories, kind.Category()) || hasPerson(people, string(kind)) {
			continue
		}
		person, err := i.pick(ctx, kind)
		if err != nil {
			return timerdto.SessionOutput{}, err
		}
		people = append(people, person)
	}

	session, err := i.svc.Start(ctx, user.ID, categories, people)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) Pause(ctx context.Context) (timerdto.SessionOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	session, err := i.svc.Pause(ctx, userID)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) Resume(ctx context.Context) (timerdto.SessionOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	session, err := i.svc.Resume(ctx, userID)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) Stop(ctx context.Context, input timerdto.StopInput) (timerdto.StopOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return timerdto.StopOutput{}, err
	}
	if input.Counters.Publications < 0 || input.Counters.ReopenedVisits < 0 || input.Counters.Letters < 0 {
		return timerdto.StopOutput{}, fmt.Errorf("%w: counters must be non-negative", apperrors.ErrInvalidInput)
	}
	session, err := i.svc.Active(ctx, userID)
	if err != nil {
		return timerdto.StopOutput{}, err
	}
	entry, entryID, err := i.svc.Stop(ctx, userID, domain.Counters{
		Publications:   input.Counters.Publications,
		ReopenedVisits: input.Counters.ReopenedVisits,
		Letters:        input.Counters.Letters,
	})
	if err != nil {
		return timerdto.StopOutput{}, err
	}
	return timerdto.StopOutput{
		EntryID:       entryID,
		Date:          entry.Date,
		Hours:         entry.Hours,
		Minutes:       entry.Minutes,
		Category:      entry.Category,
		Observation:   entry.Observation,
		CategoryCount: len(session.Categories),
	}, nil
}

func (i *Interactor) Cancel(ctx context.Context) error {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return err
	}
	return i.svc.Cancel(ctx, userID)
}

func (i *Interactor) Tick(ctx context.Context) (timerdto.TickOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return timerdto.TickOutput{}, err
	}
	session, hours, err := i.svc.Tick(ctx, userID)
	if err != nil {
		return timerdto.TickOutput{}, err
	}
	out := timerdto.TickOutput{Session: i.toOutput(session)}
	if hours > 0 {
		out.Notice = domain.HourNoticeText(hours)
		out.NoticeHours = hours
	}
	return out, nil
}

func (i *Interactor) Status(ctx context.Context) (timerdto.SessionOutput, error) {
	userID, err := i.currentUserID(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	session, err := i.svc.Active(ctx, userID)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) resolvePerson(ctx context.Context, kind, id string) (domain.Person, error) {
	contact, err := i.contacts.Get(ctx, kind, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("resolve %s %s: %w", kind, id, err)
	}
	return domain.Person{Kind: contact.Kind, ID: contact.ID, Name: contact.Name}, nil
}

// pick asks the selector for a contact of kind, registering a new one when
// the user types a name instead of choosing.
func (i *Interactor) pick(ctx context.Context, kind contactdomain.Kind) (domain.Person, error) {
	if i.selector == nil {
		return domain.Person{}, apperrors.ErrSelectionCancelled
	}
	contacts, err := i.contacts.List(ctx, string(kind))
	if err != nil {
		return domain.Person{}, err
	}
	candidates := make([]timerout.Candidate, 0, len(contacts))
	for _, c := range contacts {
		subtitle := c.Address
		if kind == contactdomain.KindBibleStudy && c.Schedule != "" {
			subtitle = c.Schedule
		}
		candidates = append(candidates, timerout.Candidate{ID: c.ID, Name: c.Name, Subtitle: subtitle})
	}
	selection, err := i.selector.SelectContact(ctx, string(kind), candidates)
	if err != nil {
		if errors.Is(err, apperrors.ErrSelectionCancelled) {
			return domain.Person{}, err
		}
		return domain.Person{}, fmt.Errorf("select %s: %w", kind, err)
	}
	if name := strings.TrimSpace(selection.NewName); name != "" {
		created, err := i.contacts.Add(ctx, contactdto.AddContactInput{Kind: string(kind), Name: name})
		if err != nil {
			return domain.Person{}, err
		}
		return domain.Person{Kind: created.Kind, ID: created.ID, Name: created.Name}, nil
	}
	if selection.ContactID == "" {
		return domain.Person{}, apperrors.ErrSelectionCancelled
	}
	return i.resolvePerson(ctx, string(kind), selection.ContactID)
}

func (i *Interactor) currentUserID(ctx context.Context) (string, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (i *Interactor) toOutput(session domain.Session) timerdto.SessionOutput {
	elapsed := session.Elapsed(i.clock.Now())
	people := make([]timerdto.PersonOutput, 0, len(session.People))
	for _, p := range session.People {
		people = append(people, timerdto.PersonOutput{Kind: p.Kind, ID: p.ID, Name: p.Name})
	}
	return timerdto.SessionOutput{
		UserID:     session.UserID,
		Start:      session.Start,
		Paused:     session.Paused,
		Categories: append([]string(nil), session.Categories...),
		People:     people,
		Elapsed:    elapsed,
		Display:    domain.FormatClock(elapsed),
	}
}

func trimCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func hasPerson(people []domain.Person, kind string) bool {
	for _, p := range people {
		if p.Kind == kind {
			return true
		}
	}
	return false
}
