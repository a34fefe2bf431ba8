package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/foodprint-app/foodprint/internal/client/api"
	"github.com/foodprint-app/foodprint/internal/client/services"
	"github.com/foodprint-app/foodprint/internal/common"
)

// getSimpleText, getPassword and getYesNo are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// Register prompts for the new account fields and attempts to create the
// account on the server. A successful registration does not sign the user
// in; they log in separately afterwards.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	address, err := getSimpleText(a.reader, "Enter delivery address (optional)", os.Stdout)
	if err != nil {
		return err
	}
	preference, err := getSimpleText(a.reader, "Enter shopping preference (optional)", os.Stdout)
	if err != nil {
		return err
	}

	ok := a.session.Register(ctx, api.RegisterInput{
		Username:           username,
		Email:              email,
		Password:           string(password),
		FullAddress:        address,
		ShoppingPreference: preference,
	})
	if !ok {
		log.Printf("Registration unsuccessful: %s", a.session.LastError().Error())
		return a.session.LastError()
	}

	fmt.Println("Account created, you can log in now")
	return nil
}

// Login prompts for credentials and a remember-me choice, then tries to
// authenticate. The remember-me answer decides whether the session survives
// a restart: yes makes it persisted, no keeps it in memory only.
//
// The password is securely wiped before returning. A failed login is
// reported to the user but does not return an error to the REPL.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := getYesNo(a.reader, "Stay signed in on this device?", os.Stdout)
	if err != nil {
		return err
	}
	mode := services.Ephemeral
	if remember {
		mode = services.Persisted
	}

	if !a.session.Login(ctx, username, string(password), mode) {
		cause := a.session.LastError()
		switch {
		case errors.Is(cause, api.ErrUnavailable):
			log.Printf("Server unavailable, try again later")
		case errors.Is(cause, api.ErrUnauthorized):
			log.Printf("Invalid credentials")
		default:
			log.Printf("Login unsuccessful: %s", cause.Error())
		}
		return nil
	}

	log.Printf("Login successful")
	return nil
}

// Whoami fetches the current account record from the server using the
// session token and prints it. A 401 means the token is no longer accepted;
// the session is cleared so the user can log in again.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.client.Profile(ctx, a.session.Token())
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			log.Printf("Session expired, please log in again")
			return a.session.Logout(ctx)
		}
		log.Printf("Could not fetch profile: %s", err.Error())
		return err
	}

	if err := a.session.UpdateUser(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Username:    %s\n", user.Username)
	fmt.Printf("Email:       %s\n", user.Email)
	fmt.Printf("Member since %s\n", user.RegistrationDate.Format("2006-01-02"))
	fmt.Printf("Points:      %d\n", user.Points)
	fmt.Printf("Emissions:   %.2f total, %.2f saved\n", user.TotalEmissions, user.EmissionsSaved)
	return nil
}

// Logout clears the in-memory session and every durable trace of it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
