package validation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	usernames map[string]bool
	emails    map[string]bool
	err       error
}

func (f fakeUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return f.usernames[username], f.err
}

func (f fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.emails[email], f.err
}

type fakeItems map[string]*dto.ItemRead

func (f fakeItems) GetByName(_ context.Context, name string) (*dto.ItemRead, error) {
	if it, ok := f["name:"+name]; ok {
		return it, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeItems) GetByBarcode(_ context.Context, barcode string) (*dto.ItemRead, error) {
	if it, ok := f["barcode:"+barcode]; ok {
		return it, nil
	}
	return nil, domain.ErrNotFound
}

func validRegistration() validation.Registration {
	return validation.Registration{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestValidateRegistration(t *testing.T) {
	existing := fakeUsers{
		usernames: map[string]bool{"bob": true},
		emails:    map[string]bool{"bob@example.com": true},
	}

	tests := []struct {
		name   string
		mutate func(r *validation.Registration)
		fields []string
	}{
		{"valid", func(*validation.Registration) {}, nil},
		{"username too short", func(r *validation.Registration) { r.Username = "a" }, []string{"username"}},
		{"username too long", func(r *validation.Registration) { r.Username = strings.Repeat("a", 31) }, []string{"username"}},
		{"username boundary", func(r *validation.Registration) { r.Username = "ab" }, nil},
		{"username taken", func(r *validation.Registration) { r.Username = "bob" }, []string{"username"}},
		{"username case sensitive", func(r *validation.Registration) { r.Username = "Bob" }, nil},
		{"bad email", func(r *validation.Registration) { r.Email = "not-an-email" }, []string{"email_address"}},
		{"email taken", func(r *validation.Registration) { r.Email = "bob@example.com" }, []string{"email_address"}},
		{"short password", func(r *validation.Registration) {
			r.Password, r.ConfirmPassword = "12345", "12345"
		}, []string{"password"}},
		{"password over bcrypt byte limit", func(r *validation.Registration) {
			r.Password = strings.Repeat("é", 40)
			r.ConfirmPassword = r.Password
		}, []string{"password"}},
		{"password at byte limit", func(r *validation.Registration) {
			r.Password = strings.Repeat("é", 36)
			r.ConfirmPassword = r.Password
		}, nil},
		{"mismatch", func(r *validation.Registration) { r.ConfirmPassword = "secret2" }, []string{"confirm_password"}},
		{"all empty", func(r *validation.Registration) { *r = validation.Registration{} },
			[]string{"username", "email_address", "password", "confirm_password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(&in)
			errs, err := validation.ValidateRegistration(context.Background(), existing, in)
			require.NoError(t, err)
			if tt.fields == nil {
				assert.Empty(t, errs)
				assert.NoError(t, errs.Err())
				return
			}
			require.Len(t, errs, len(tt.fields), "%v", errs)
			for _, f := range tt.fields {
				assert.True(t, errs.Has(f), "expected failure on %s, got %v", f, errs)
			}
			assert.ErrorIs(t, errs.Err(), domain.ErrValidation)
		})
	}
}

func TestValidateRegistration_Messages(t *testing.T) {
	existing := fakeUsers{usernames: map[string]bool{"bob": true}}
	in := validRegistration()
	in.Username = "bob"
	in.ConfirmPassword = "nope!!"

	errs, err := validation.ValidateRegistration(context.Background(), existing, in)
	require.NoError(t, err)
	assert.Contains(t, errs, validation.FieldError{
		Field:  "username",
		Reason: `Username "bob" is already taken! Please choose a different one.`,
	})
	assert.Contains(t, errs, validation.FieldError{Field: "confirm_password", Reason: "Passwords must match!"})
}

func TestValidateRegistration_LookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := validation.ValidateRegistration(context.Background(), fakeUsers{err: boom}, validRegistration())
	assert.ErrorIs(t, err, boom)
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, validation.ValidateLogin(validation.Login{Username: "alice", Password: "x"}))

	errs := validation.ValidateLogin(validation.Login{})
	assert.True(t, errs.Has("username"))
	assert.True(t, errs.Has("password"))
}

func TestValidateItem(t *testing.T) {
	existing := fakeItems{
		"name:Laptop":          {Name: "Laptop"},
		"barcode:123985473165": {Barcode: "123985473165"},
	}
	valid := validation.NewItem{
		Name:    "Tablet",
		Barcode: "111122223333",
		Price:   money.MustParse("300"),
	}

	errs, err := validation.ValidateItem(context.Background(), existing, valid)
	require.NoError(t, err)
	assert.Empty(t, errs)

	bad := valid
	bad.Name = "Laptop"
	bad.Barcode = "12345"
	bad.Price = money.Zero
	errs, err = validation.ValidateItem(context.Background(), existing, bad)
	require.NoError(t, err)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("barcode"))
	assert.True(t, errs.Has("price"))

	dup := valid
	dup.Barcode = "123985473165"
	errs, err = validation.ValidateItem(context.Background(), existing, dup)
	require.NoError(t, err)
	assert.Equal(t, validation.Errors{{Field: "barcode", Reason: `Barcode "123985473165" is already in use.`}}, errs)

	letters := valid
	letters.Barcode = "ABCDEFGHIJKL"
	errs, err = validation.ValidateItem(context.Background(), existing, letters)
	require.NoError(t, err)
	assert.True(t, errs.Has("barcode"))
}

func TestErrors_Error(t *testing.T) {
	errs := validation.Errors{{Field: "username", Reason: "This field is required."}}
	assert.Equal(t, "validation failed: username: This field is required.", errs.Error())
	assert.Nil(t, validation.Errors(nil).Err())
}
