package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrPersistence    = errors.New("state could not be saved")
	ErrInvalidBackup  = errors.New("invalid backup file")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrNoCurrentUser  = errors.New("no user is logged in")

	ErrNoCategory         = errors.New("select at least one category")
	ErrSelectionCancelled = errors.New("selection cancelled")

	ErrActiveTimerExists     = errors.New("a timer session is already running")
	ErrTimerOwnedByOtherUser = errors.New("a timer session is running for another user")
	ErrNoActiveTimer         = errors.New("no active timer session")
	ErrTimerNotRunning       = errors.New("timer is not running")
	ErrTimerNotPaused        = errors.New("timer is not paused")

	ErrGoalPeriodOpen = errors.New("a goal period is already open, close it first")
	ErrNoOpenGoal     = errors.New("no open goal period to close")

	ErrMirrorDisabled = errors.New("mirror is not configured")
)
