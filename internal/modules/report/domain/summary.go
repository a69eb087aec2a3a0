package domain

import (
	"fmt"
	"math"
	"strconv"

	entry "fieldreport/internal/modules/entry/domain"
)

// Fact is the slice of an entry the aggregation reads.
type Fact struct {
	Date           string
	Hours          int
	Minutes        int
	Category       string
	Publications   int
	ReopenedVisits int
	Letters        int
}

// Summary is the normalised monthly aggregate of one user.
type Summary struct {
	Month          Month
	Hours          int
	Minutes        int
	ReturnVisits   int
	BibleStudies   int
	Publications   int
	ReopenedVisits int
	Letters        int
	Entries        int
}

// Aggregate sums the facts of month and carries whole hours out of the
// minute total. The result does not depend on fact order.
func Aggregate(month Month, facts []Fact) Summary {
	s := Summary{Month: month}
	for _, f := range facts {
		if !month.Contains(f.Date) {
			continue
		}
		s.Entries++
		s.Hours += f.Hours
		s.Minutes += f.Minutes
		switch entry.Category(f.Category).Special() {
		case entry.SpecialReturnVisit:
			s.ReturnVisits++
		case entry.SpecialBibleStudy:
			s.BibleStudies++
		}
		s.Publications += f.Publications
		s.ReopenedVisits += f.ReopenedVisits
		s.Letters += f.Letters
	}
	s.Hours += s.Minutes / 60
	s.Minutes %= 60
	return s
}

func (s Summary) TotalHours() float64 {
	return float64(s.Hours) + float64(s.Minutes)/60
}

// HoursLabel renders the total as "2h 05m".
func (s Summary) HoursLabel() string {
	return fmt.Sprintf("%dh %02dm", s.Hours, s.Minutes)
}

// Comparison relates a month to the one before it. Percent is only
// meaningful when HasPercent is set, which requires a non-zero prior total.
type Comparison struct {
	Current    float64
	Prior      float64
	Delta      float64
	Percent    float64
	HasPercent bool
	Message    string
}

func Compare(current, prior Summary) Comparison {
	c := Comparison{Current: current.TotalHours(), Prior: prior.TotalHours()}
	c.Delta = c.Current - c.Prior
	if c.Prior <= 0 {
		c.Message = "Sem dados do mês anterior."
		return c
	}
	c.Percent = c.Delta / c.Prior * 100
	c.HasPercent = true
	switch {
	case c.Delta > 0:
		c.Message = fmt.Sprintf("Você fez %sh a mais que o mês anterior (+%s%%).", fixed1(c.Delta), fixed1(c.Percent))
	case c.Delta < 0:
		c.Message = fmt.Sprintf("Você fez %sh a menos que o mês anterior (%s%%).", fixed1(math.Abs(c.Delta)), fixed1(c.Percent))
	default:
		c.Message = "Você fez exatamente as mesmas horas do mês anterior."
	}
	return c
}

// Progress is the share of goal reached, capped at 100. Without a goal the
// progress is zero.
func Progress(total, goal float64, hasGoal bool) float64 {
	if !hasGoal || goal <= 0 {
		return 0
	}
	return math.Min(100, total/goal*100)
}

// GoalLabel renders a monthly goal as "50.0h", or a dash when unset.
func GoalLabel(goal float64, hasGoal bool) string {
	if !hasGoal {
		return "—"
	}
	return fixed1(goal) + "h"
}

func fixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
