package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is an activity kind. The fixed set below is seeded into every new
// state document; users may also log free-text categories.
type Category string

const (
	CategoryField        Category = "Campo"
	CategoryReturnVisits Category = "Revisitas"
	CategoryLetters      Category = "Cartas"
	CategoryBibleStudy   Category = "Estudo Bíblico"
	CategoryCart         Category = "Carrinho"
	CategoryInformal     Category = "Testemunho informal"
)

// Special classifies categories that reports count separately.
type Special int

const (
	SpecialNone Special = iota
	SpecialReturnVisit
	SpecialBibleStudy
)

func (c Category) Special() Special {
	switch c {
	case CategoryReturnVisits:
		return SpecialReturnVisit
	case CategoryBibleStudy:
		return SpecialBibleStudy
	default:
		return SpecialNone
	}
}

func (c Category) Validate() error {
	if strings.TrimSpace(string(c)) == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}

// JoinCategories renders a multi-category timer entry as one category label.
func JoinCategories(categories []Category) Category {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, string(c))
	}
	return Category(strings.Join(parts, ", "))
}

type Counters struct {
	Publications   int
	ReopenedVisits int
	Letters        int
}

func (c Counters) Validate() error {
	if c.Publications < 0 || c.ReopenedVisits < 0 || c.Letters < 0 {
		return fmt.Errorf("counters must be non-negative")
	}
	return nil
}

// Entry is one logged activity. Minutes may exceed 59; totals are
// normalised when aggregated.
type Entry struct {
	ID          string
	UserID      string
	Date        string
	Hours       int
	Minutes     int
	Category    Category
	Observation string
	Counters    Counters
}

const DateLayout = "2006-01-02"

func (e Entry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %q", e.Date)
	}
	if e.Hours < 0 || e.Minutes < 0 {
		return fmt.Errorf("hours and minutes must be non-negative")
	}
	if err := e.Category.Validate(); err != nil {
		return err
	}
	return e.Counters.Validate()
}

// YearMonth is the aggregation key (YYYY-MM) of the entry's day.
func (e Entry) YearMonth() string {
	if len(e.Date) < 7 {
		return ""
	}
	return e.Date[:7]
}

// PersonObservation prefixes a note with the contact it concerns.
func PersonObservation(name, observation string) string {
	if observation == "" {
		return name
	}
	return name + ": " + observation
}
