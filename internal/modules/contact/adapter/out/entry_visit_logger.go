package out

import (
	"context"

	contactout "fieldreport/internal/modules/contact/port/out"
	entrydto "fieldreport/internal/modules/entry/dto"
	entryin "fieldreport/internal/modules/entry/port/in"
)

type EntryVisitLogger struct {
	entries entryin.Usecase
}

func NewEntryVisitLogger(entries entryin.Usecase) contactout.VisitLogger {
	return &EntryVisitLogger{entries: entries}
}

func (a *EntryVisitLogger) LogVisit(ctx context.Context, userID, date string, minutes int, category, observation string) (string, error) {
	out, err := a.entries.Add(ctx, entrydto.AddEntryInput{
		UserID:      userID,
		Date:        date,
		Hours:       minutes / 60,
		Minutes:     minutes % 60,
		Category:    category,
		Observation: observation,
	})
	if err != nil {
		return "", err
	}
	return out.ID, nil
}
