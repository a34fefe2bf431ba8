// Package users defines the credential store the auth service depends on.
// The store itself is an external collaborator; the service only ever sees
// this interface.
package users

import (
	"context"

	"github.com/foodprint-app/foodprint/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. Returns common.ErrDuplicateAccount when
	// the username or email is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the account with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the account with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
