package validation

import (
	"context"
	"fmt"

	"github.com/amirasaad/market/pkg/utils"
)

// UserLookup is the read-only view of the user store needed for uniqueness checks.
type UserLookup interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Registration is the input of a sign-up.
type Registration struct {
	Username        string `json:"username" validate:"required,min=2,max=30"`
	Email           string `json:"email_address" validate:"required,email,max=50"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// Login is the input of a sign-in.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ValidateRegistration applies the field rules and, for fields that pass
// them, checks that username and email are not taken. Matching is exact and
// case-sensitive.
func ValidateRegistration(ctx context.Context, users UserLookup, in Registration) (Errors, error) {
	errs, err := Struct(in)
	if err != nil {
		return nil, err
	}
	// max counts runes; bcrypt limits bytes.
	if !errs.Has("password") && len(in.Password) > utils.MaxPasswordLength {
		errs.add("password", fmt.Sprintf(
			"Password must be at most %d bytes long.", utils.MaxPasswordLength))
	}

	if !errs.Has("username") {
		taken, err := users.ExistsByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.add("username", fmt.Sprintf(
				"Username %q is already taken! Please choose a different one.", in.Username))
		}
	}
	if !errs.Has("email_address") {
		taken, err := users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.add("email_address", fmt.Sprintf(
				"Email address %q is already in use! Please choose a different one.", in.Email))
		}
	}
	return errs, nil
}

// ValidateLogin checks that both credentials were supplied. It never looks
// at the store, so it cannot reveal whether a username exists.
func ValidateLogin(in Login) Errors {
	errs, _ := Struct(in) // only fails for non-struct input
	return errs
}
