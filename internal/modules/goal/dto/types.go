package dto

type SetTargetsInput struct {
	// Mode applies to regular pioneers only: "mensal" or "anual".
	Mode  string
	Value *float64
}

type ConfigureInput struct {
	Role  string
	Mode  string
	Value *float64
}

type TargetsOutput struct {
	UserID           string
	Role             string
	PublisherMonthly *float64
	AuxiliaryMonthly *float64
	RegularMode      string
	RegularMonthly   *float64
	RegularAnnual    *float64
}

type PeriodOutput struct {
	UserID        string
	Label         string
	Start         string
	ExpectedHours float64
}

type StatusOutput struct {
	Role      string
	RoleLabel string
	Targets   TargetsOutput
	// MonthlyGoal is zero when HasGoal is false.
	MonthlyGoal float64
	HasGoal     bool
	Period      *PeriodOutput
}

type MonthlyGoalOutput struct {
	Hours   float64
	HasGoal bool
}
