package domain

import (
	"fmt"
	"strings"

	account "fieldreport/internal/modules/account/domain"
)

// RegularMode selects how a regular pioneer states the target.
type RegularMode string

const (
	RegularMonthly RegularMode = "mensal"
	RegularAnnual  RegularMode = "anual"
)

func ParseRegularMode(raw string) (RegularMode, error) {
	mode := RegularMode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case "":
		return RegularMonthly, nil
	case RegularMonthly, RegularAnnual:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported regular mode %q", raw)
	}
}

// Targets holds the hour targets a user configured per role. Unset values
// are nil; a zero value counts as unset when a goal is resolved.
type Targets struct {
	UserID           string
	Role             account.Role
	PublisherMonthly *float64
	AuxiliaryMonthly *float64
	RegularMode      RegularMode
	RegularMonthly   *float64
	RegularAnnual    *float64
}

// DefaultTargets is the record created at sign-up.
func DefaultTargets(userID string, role account.Role) Targets {
	return Targets{UserID: userID, Role: role, RegularMode: RegularMonthly}
}

// Apply sets the field matching role. For regular pioneers the mode picks
// the monthly or annual field and clears the other.
func (t *Targets) Apply(role account.Role, mode RegularMode, value *float64) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if value != nil && *value < 0 {
		return fmt.Errorf("target must be non-negative")
	}
	switch role {
	case account.RolePublisher:
		t.PublisherMonthly = copyValue(value)
	case account.RoleAuxiliary:
		t.AuxiliaryMonthly = copyValue(value)
	case account.RoleRegular:
		if mode == "" {
			mode = RegularMonthly
		}
		t.RegularMode = mode
		if mode == RegularAnnual {
			t.RegularAnnual = copyValue(value)
			t.RegularMonthly = nil
		} else {
			t.RegularMonthly = copyValue(value)
			t.RegularAnnual = nil
		}
	}
	t.Role = role
	return nil
}

// MonthlyGoal resolves the target that applies to one month for role.
// Annual regular targets are spread evenly over twelve months.
func (t Targets) MonthlyGoal(role account.Role) (float64, bool) {
	switch role {
	case account.RolePublisher:
		return positive(t.PublisherMonthly)
	case account.RoleAuxiliary:
		return positive(t.AuxiliaryMonthly)
	case account.RoleRegular:
		if t.RegularMode == RegularAnnual {
			annual, ok := positive(t.RegularAnnual)
			if !ok {
				return 0, false
			}
			return annual / 12, true
		}
		return positive(t.RegularMonthly)
	default:
		return 0, false
	}
}

// ExpectedHours is the figure recorded on a goal period for role: the
// configured value as entered, annual or monthly, or zero when unset.
func (t Targets) ExpectedHours(role account.Role) float64 {
	var v *float64
	switch role {
	case account.RolePublisher:
		v = t.PublisherMonthly
	case account.RoleAuxiliary:
		v = t.AuxiliaryMonthly
	case account.RoleRegular:
		if t.RegularMode == RegularAnnual {
			v = t.RegularAnnual
		} else {
			v = t.RegularMonthly
		}
	}
	if v == nil {
		return 0
	}
	return *v
}

// Period is an open goal commitment. At most one exists per user.
type Period struct {
	UserID        string
	Label         string
	Start         string
	ExpectedHours float64
}

func positive(v *float64) (float64, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
