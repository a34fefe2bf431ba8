// Package models holds the client-side data structures, shaped the way the
// API serializes them.
package models

import "time"

// User is the public account record returned by the server on login. It
// never contains the password or its hash.
type User struct {
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
