package out

import (
	"context"

	entrydto "fieldreport/internal/modules/entry/dto"
	entryin "fieldreport/internal/modules/entry/port/in"
	timerout "fieldreport/internal/modules/timer/port/out"
)

type EntryLogger struct {
	entries entryin.Usecase
}

func NewEntryLogger(entries entryin.Usecase) timerout.EntryLogger {
	return &EntryLogger{entries: entries}
}

func (a *EntryLogger) LogSession(ctx context.Context, entry timerout.LoggedEntry) (string, error) {
	out, err := a.entries.Add(ctx, entrydto.AddEntryInput{
		UserID:      entry.UserID,
		Date:        entry.Date,
		Hours:       entry.Hours,
		Minutes:     entry.Minutes,
		Category:    entry.Category,
		Observation: entry.Observation,
		Counters: entrydto.Counters{
			Publications:   entry.Publications,
			ReopenedVisits: entry.ReopenedVisits,
			Letters:        entry.Letters,
		},
	})
	if err != nil {
		return "", err
	}
	return out.ID, nil
}
