package out

import (
	"context"

	"fieldreport/internal/modules/account/domain"
)

type UserStore interface {
	// Register stores the user with its profile and default goal record and
	// makes it current. It fails with ErrDuplicateEmail when the email is taken.
	Register(ctx context.Context, user domain.User, profile domain.Profile) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateCredential(ctx context.Context, userID, credential string) error
	CurrentID(ctx context.Context) (string, error)
	SetCurrent(ctx context.Context, userID string) error
	LoadProfile(ctx context.Context, userID string) (domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
	UpdateRole(ctx context.Context, userID string, role domain.Role) error
}

type ElderStore interface {
	Add(ctx context.Context, elder domain.Elder) error
	Remove(ctx context.Context, userID, id string) error
	FindByID(ctx context.Context, userID, id string) (domain.Elder, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Elder, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches encoded. needsRehash is set for
	// credentials stored in a legacy form.
	Verify(password, encoded string) (ok bool, needsRehash bool, err error)
}
