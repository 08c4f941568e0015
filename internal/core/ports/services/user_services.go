package services

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
)

// UserSvcFacade manages user credentials. Registering an existing username
// replaces the stored credentials (overwrite-on-save).
type UserSvcFacade interface {
	// Register creates or replaces a user with the hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate checks a username/password pair and returns the user,
	// or apperrors.ErrUnauthorized on mismatch.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
