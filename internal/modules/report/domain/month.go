package domain

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Month is a calendar month, the unit every aggregate is keyed by.
type Month struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month must be between 1 and 12: %d", month)
	}
	if year < 1 {
		return Month{}, fmt.Errorf("year must be positive: %d", year)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// ParseMonth reads a YYYY-MM key.
func ParseMonth(key string) (Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Month{}, fmt.Errorf("month must be YYYY-MM: %q", key)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Prev is the calendar month before m; January rolls back to December.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Label renders the month as "Março de 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s de %d", monthNames[m.Month-1], m.Year)
}

// Contains reports whether a YYYY-MM-DD day falls in m. Only the key prefix
// is compared, so no time zone can move a day across months.
func (m Month) Contains(day string) bool {
	return len(day) >= 7 && day[:7] == m.Key()
}
