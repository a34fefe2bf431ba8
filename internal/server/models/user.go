package models

import "time"

// DefaultPoints is the points balance granted to a new account.
const DefaultPoints = 100

// User is the durable account record. PasswordHash is the only secret it
// carries and must never leave this package through Public.
type User struct {
	ID                 string
	Username           string
	Email              string
	PasswordHash       string
	FullAddress        string
	ShoppingPreference string
	ProfileImage       string
	RegistrationDate   time.Time
	TotalEmissions     float64
	EmissionsSaved     float64
	Points             int
}

// PublicUser is the caller-visible projection of an account, shaped the way
// the REST API serializes it.
type PublicUser struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	FullAddress        string    `json:"fullAddress"`
	ShoppingPreference string    `json:"shoppingPreference"`
	RegistrationDate   time.Time `json:"registrationDate"`
	TotalEmissions     float64   `json:"totalEmissions"`
	EmissionsSaved     float64   `json:"emissionsSaved"`
	Points             int       `json:"points"`
	ProfileImage       string    `json:"profileImage"`
}

// Public returns the projection of the account that excludes the password
// hash.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		FullAddress:        u.FullAddress,
		ShoppingPreference: u.ShoppingPreference,
		RegistrationDate:   u.RegistrationDate,
		TotalEmissions:     u.TotalEmissions,
		EmissionsSaved:     u.EmissionsSaved,
		Points:             u.Points,
		ProfileImage:       u.ProfileImage,
	}
}
