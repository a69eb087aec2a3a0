package dto

type AddContactInput struct {
	Kind        string
	Name        string
	Address     string
	Phone       string
	Publication string
	Subject     string
	Schedule    string
}

type RecordVisitInput struct {
	Kind      string
	ContactID string
	// Date defaults to today.
	Date string
	Note string
}

type VisitOutput struct {
	ID   string
	Date string
	Note string
}

type ContactOutput struct {
	ID          string
	UserID      string
	Kind        string
	Name        string
	Address     string
	Phone       string
	PhoneDigits string
	Publication string
	Subject     string
	Schedule    string
	// History is ordered newest first.
	History []VisitOutput
}

type RecordVisitOutput struct {
	Contact ContactOutput
	EntryID string
	Minutes int
}

type PromoteOutput struct {
	RemovedID string
	Study     ContactOutput
}
