package out

import "context"

// RestoreStats counts what a restore brought in.
type RestoreStats struct {
	Users        int
	Entries      int
	ReturnVisits int
	BibleStudies int
}

// StateArchive dumps and restores the whole persisted state.
type StateArchive interface {
	Dump(ctx context.Context) ([]byte, error)
	// Restore replaces the live state with raw. raw must already be
	// validated; a decode failure leaves the live state untouched.
	Restore(ctx context.Context, raw []byte) (RestoreStats, error)
}
