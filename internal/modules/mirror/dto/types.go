package dto

type SyncOutput struct {
	UserID       string
	Entries      int
	ReturnVisits int
	BibleStudies int
	LastSync     string
	// Found is false when a pull finds no remote document.
	Found bool
}
