package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodprint-app/foodprint/internal/common"
	"github.com/foodprint-app/foodprint/internal/cryptox"
	"github.com/foodprint-app/foodprint/internal/server/auth"
	"github.com/foodprint-app/foodprint/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byUsernameOut *models.User
	byUsernameErr error

	byIDOut *models.User
	byIDErr error

	created *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func newService(t *testing.T, repo *fakeUsersRepo) *UserService {
	t.Helper()
	issuer, err := auth.NewTokenIssuer([]byte("k"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}
	return NewUserService(repo, issuer)
}

func validInput() RegisterInput {
	return RegisterInput{
		Username:           "alice",
		Email:              "a@x.com",
		Password:           []byte("Passw0rd"),
		FullAddress:        "1 Main St",
		ShoppingPreference: "Local Market",
	}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := newService(t, repo)

	got, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if got.Username != "alice" || got.Email != "a@x.com" {
		t.Fatalf("unexpected public user: %+v", got)
	}
	if got.Points != models.DefaultPoints {
		t.Fatalf("new account points = %d, want %d", got.Points, models.DefaultPoints)
	}
	if got.ID == "" {
		t.Fatalf("expected an assigned id")
	}

	// the stored record carries a hash, never the plaintext
	if repo.created.PasswordHash == "Passw0rd" || repo.created.PasswordHash == "" {
		t.Fatalf("stored secret not hashed: %q", repo.created.PasswordHash)
	}
	if !cryptox.VerifyPassword([]byte("Passw0rd"), repo.created.PasswordHash) {
		t.Fatalf("stored hash does not verify the original password")
	}
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := newService(t, &fakeUsersRepo{})

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"empty username", RegisterInput{Email: "a@x.com", Password: []byte("p")}},
		{"empty email", RegisterInput{Username: "alice", Password: []byte("p")}},
		{"empty password", RegisterInput{Username: "alice", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("want common.ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrDuplicateAccount}
	svc := newService(t, repo)

	_, err := svc.Register(context.Background(), validInput())
	if !errors.Is(err, common.ErrDuplicateAccount) {
		t.Fatalf("want common.ErrDuplicateAccount, got %v", err)
	}
}

func TestRegister_RepoFault(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	svc := newService(t, repo)

	_, err := svc.Register(context.Background(), validInput())
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("want common.ErrInternal, got %v", err)
	}
}

// --- Login ---

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{
		ID:           "u-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: hash,
		Points:       models.DefaultPoints,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUsersRepo{byUsernameOut: storedUser(t, "Passw0rd")}
	svc := newService(t, repo)

	res, err := svc.Login(context.Background(), "alice", []byte("Passw0rd"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
	if res.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", res.User)
	}

	// the issued token verifies back to the account id
	userID, err := svc.tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("token bound to %q, want u-1", userID)
	}
}

func TestLogin_UnknownUserAndWrongPassword_SameError(t *testing.T) {
	// unknown username
	svcGhost := newService(t, &fakeUsersRepo{byUsernameErr: common.ErrNotFound})
	_, errGhost := svcGhost.Login(context.Background(), "ghost", []byte("whatever"))

	// wrong password
	svcAlice := newService(t, &fakeUsersRepo{byUsernameOut: storedUser(t, "Passw0rd")})
	_, errWrong := svcAlice.Login(context.Background(), "alice", []byte("wrong"))

	if !errors.Is(errGhost, common.ErrInvalidCredentials) {
		t.Fatalf("unknown user: want common.ErrInvalidCredentials, got %v", errGhost)
	}
	if !errors.Is(errWrong, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want common.ErrInvalidCredentials, got %v", errWrong)
	}
	if errGhost.Error() != errWrong.Error() {
		t.Fatalf("errors must be indistinguishable: %v vs %v", errGhost, errWrong)
	}
}

func TestLogin_RepoFault(t *testing.T) {
	svc := newService(t, &fakeUsersRepo{byUsernameErr: errors.New("db down")})

	_, err := svc.Login(context.Background(), "alice", []byte("Passw0rd"))
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("want common.ErrInternal, got %v", err)
	}
}

// --- Profile ---

func TestProfile_Success(t *testing.T) {
	repo := &fakeUsersRepo{byIDOut: storedUser(t, "Passw0rd")}
	svc := newService(t, repo)

	got, err := svc.Profile(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestProfile_NotFound(t *testing.T) {
	svc := newService(t, &fakeUsersRepo{byIDErr: common.ErrNotFound})

	_, err := svc.Profile(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

// --- register followed by login round-trip through the fake store ---

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := newService(t, repo)

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// serve the created record back for the login lookup
	repo.byUsernameOut = repo.created

	res, err := svc.Login(context.Background(), "alice", []byte("Passw0rd"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	userID, err := svc.tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != repo.created.ID {
		t.Fatalf("token bound to %q, want %q", userID, repo.created.ID)
	}
}
