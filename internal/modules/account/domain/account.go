package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RolePublisher Role = "publicador"
	RoleAuxiliary Role = "auxiliar"
	RoleRegular   Role = "regular"
)

// Roles lists every role in display order.
var Roles = []Role{RolePublisher, RoleAuxiliary, RoleRegular}

func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	switch r {
	case RolePublisher, RoleAuxiliary, RoleRegular:
		return nil
	default:
		return fmt.Errorf("unsupported role %q", string(r))
	}
}

// Label is the role name shown on goal periods and reports.
func (r Role) Label() string {
	switch r {
	case RolePublisher:
		return "Publicador"
	case RoleAuxiliary:
		return "Pioneiro Auxiliar"
	case RoleRegular:
		return "Pioneiro Regular"
	default:
		return string(r)
	}
}

func (r Role) IsPioneer() bool {
	switch r {
	case RoleAuxiliary, RoleRegular:
		return true
	default:
		return false
	}
}

type User struct {
	ID           string
	Name         string
	Congregation string
	Role         Role
	Email        string
	Credential   string
}

// Profile is the per-user settings record. Its name and congregation take
// precedence over the user record when non-empty.
type Profile struct {
	UserID       string
	Name         string
	Congregation string
	Role         Role
	ElderNote    string
}

func (p Profile) DisplayName(user User) string {
	if p.Name != "" {
		return p.Name
	}
	return user.Name
}

func (p Profile) DisplayCongregation(user User) string {
	if p.Congregation != "" {
		return p.Congregation
	}
	return user.Congregation
}

type Elder struct {
	ID     string
	UserID string
	Name   string
	Phone  string
}

func (e Elder) PhoneDigits() string {
	return Digits(e.Phone)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Digits keeps only ASCII digits, the form messaging links accept.
func Digits(s string) string {
	b := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
