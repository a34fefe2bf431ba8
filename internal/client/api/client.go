// Package api defines the client's view of the foodprint server. The session
// manager only ever sees the Client interface and the typed errors below, so
// transport details stay out of session logic.
package api

import (
	"context"
	"errors"

	"github.com/foodprint-app/foodprint/internal/client/models"
)

var (
	// ErrUnavailable covers transport failures and server-side faults. A
	// retry may succeed.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is what bad credentials and bad tokens come back as.
	// The server keeps unknown username and wrong password
	// indistinguishable, and so does this layer.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected is a refused registration. The server does not say whether
	// the input was invalid or the account already exists.
	ErrRejected = errors.New("registration rejected")
)

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	FullAddress        string `json:"fullAddress,omitempty"`
	ShoppingPreference string `json:"shoppingPreference,omitempty"`
}

type Client interface {
	// Register creates an account. No token is returned; registration does
	// not log in.
	Register(ctx context.Context, input RegisterInput) error

	// Login exchanges credentials for a bearer token and the public user
	// record.
	Login(ctx context.Context, username, password string) (string, *models.User, error)

	// Profile fetches the account bound to the token.
	Profile(ctx context.Context, token string) (*models.User, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error
}
