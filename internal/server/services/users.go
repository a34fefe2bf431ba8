// Package services contains the server-side application services. The user
// service orchestrates registration and login: input validation, credential
// store access, password hashing and token issuance.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/foodprint-app/foodprint/internal/common"
	"github.com/foodprint-app/foodprint/internal/cryptox"
	"github.com/foodprint-app/foodprint/internal/server/auth"
	"github.com/foodprint-app/foodprint/internal/server/models"
	"github.com/foodprint-app/foodprint/internal/server/repositories/users"
	"github.com/google/uuid"
)

// RegisterInput carries the registration request fields. Profile fields are
// opaque to the auth core and stored as given.
type RegisterInput struct {
	Username           string
	Email              string
	Password           []byte
	FullAddress        string
	ShoppingPreference string
}

// LoginResult is what a successful login returns: the bearer token and the
// public projection of the account.
type LoginResult struct {
	Token string
	User  *models.PublicUser
}

type UserService struct {
	repo   users.Repository
	tokens *auth.TokenIssuer
}

func NewUserService(repo users.Repository, tokens *auth.TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register validates the draft, hashes the password and creates the account.
// No token is issued; registration does not log the user in.
//
// Errors: common.ErrValidation for empty username/email/password,
// common.ErrDuplicateAccount when username or email is taken (the transport
// layer reports both undifferentiated), common.ErrInternal otherwise.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.PublicUser, error) {
	if input.Username == "" || input.Email == "" || len(input.Password) == 0 {
		return nil, common.ErrValidation
	}

	hash, err := cryptox.HashPassword(input.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:                 uuid.NewString(),
		Username:           input.Username,
		Email:              input.Email,
		PasswordHash:       hash,
		FullAddress:        input.FullAddress,
		ShoppingPreference: input.ShoppingPreference,
		RegistrationDate:   time.Now(),
		Points:             models.DefaultPoints,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, common.ErrInternal
	}

	return user.Public(), nil
}

// Login verifies the credentials and returns a fresh token together with the
// public user record.
//
// An unknown username and a wrong password both come back as
// common.ErrInvalidCredentials so callers cannot enumerate accounts.
// Infrastructure faults come back as common.ErrInternal and are safe to
// retry.
func (s *UserService) Login(ctx context.Context, username string, password []byte) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

// Profile returns the public projection of the account bound to a verified
// token.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user.Public(), nil
}
