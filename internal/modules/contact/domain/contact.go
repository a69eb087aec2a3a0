package domain

import (
	"fmt"
	"sort"
	"strings"
)

type Kind string

const (
	KindReturnVisit Kind = "revisita"
	KindBibleStudy  Kind = "estudo"
)

func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

func (k Kind) Validate() error {
	switch k {
	case KindReturnVisit, KindBibleStudy:
		return nil
	default:
		return fmt.Errorf("unsupported contact kind %q", string(k))
	}
}

// Label prefixes contact names in timer and visit observations.
func (k Kind) Label() string {
	switch k {
	case KindReturnVisit:
		return "Revisita"
	case KindBibleStudy:
		return "Estudo"
	default:
		return string(k)
	}
}

// Category is the entry category logged for visits to this kind of contact.
func (k Kind) Category() string {
	switch k {
	case KindReturnVisit:
		return "Revisitas"
	case KindBibleStudy:
		return "Estudo Bíblico"
	default:
		return ""
	}
}

// VisitMinutes is the time credited for recording a visit.
func (k Kind) VisitMinutes() int {
	switch k {
	case KindReturnVisit:
		return 15
	default:
		return 0
	}
}

type Visit struct {
	ID   string
	Date string
	Note string
}

// Contact is a return visit or a bible study. Publication and Subject are
// only used by return visits, Schedule only by studies.
type Contact struct {
	ID          string
	UserID      string
	Kind        Kind
	Name        string
	Address     string
	Phone       string
	Publication string
	Subject     string
	Schedule    string
	History     []Visit
}

func (c Contact) Validate() error {
	if err := c.Kind.Validate(); err != nil {
		return err
	}
	if c.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// HistoryNewestFirst orders visits for display. Storage order is untouched.
func (c Contact) HistoryNewestFirst() []Visit {
	out := append([]Visit(nil), c.History...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// VisitObservation is the entry note written when a visit is recorded.
func (c Contact) VisitObservation(note string) string {
	return fmt.Sprintf("%s: %s. %s", c.Kind.Label(), c.Name, note)
}

// PromoteToStudy converts a return visit into a bible study carrying over its
// identity fields and full history.
func (c Contact) PromoteToStudy(newID string) (Contact, error) {
	if c.Kind != KindReturnVisit {
		return Contact{}, fmt.Errorf("only return visits can be promoted")
	}
	return Contact{
		ID:      newID,
		UserID:  c.UserID,
		Kind:    KindBibleStudy,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		History: append([]Visit{}, c.History...),
	}, nil
}

func (c Contact) PhoneDigits() string {
	b := strings.Builder{}
	for _, r := range c.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
