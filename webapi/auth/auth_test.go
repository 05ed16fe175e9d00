package auth_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	testutils.E2ETestSuite
}

func (s *AuthTestSuite) TestRegister_Success() {
	session := s.Register("bob")
	s.Equal("bob", session.User.Username)
	s.Equal("bob@example.com", session.User.Email)
	s.Equal(money.MustParse("1000"), session.User.Budget)

	resp := s.MakeRequest(fiber.MethodGet, "/user/me", "", session.Token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}

func (s *AuthTestSuite) TestRegister_Duplicate() {
	s.Register("bob")
	resp := s.MakeRequest(fiber.MethodPost, "/auth/register",
		`{"username":"bob","email_address":"bob@example.com","password":"secret1","confirm_password":"secret1"}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	pd := s.DecodeProblem(resp)
	errs, ok := pd.Errors.(map[string]any)
	s.Require().True(ok)
	s.Contains(errs, "username")
	s.Contains(errs, "email_address")
}

func (s *AuthTestSuite) TestRegister_Invalid() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/register",
		`{"username":"b","email_address":"nope","password":"123","confirm_password":"456"}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	pd := s.DecodeProblem(resp)
	errs, ok := pd.Errors.(map[string]any)
	s.Require().True(ok)
	for _, field := range []string{"username", "email_address", "password", "confirm_password"} {
		s.Contains(errs, field)
	}
}

func (s *AuthTestSuite) TestRegister_BadBody() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/register", `{"username":123}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin() {
	s.Register("bob")

	token := s.Login("bob", "password123")
	s.NotEmpty(token)

	resp := s.MakeRequest(fiber.MethodPost, "/auth/login", `{"username":"bob","password":"wrong"}`, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	wrongPassword := s.DecodeProblem(resp)

	resp = s.MakeRequest(fiber.MethodPost, "/auth/login", `{"username":"nobody","password":"wrong"}`, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	unknownUser := s.DecodeProblem(resp)
	s.Equal(wrongPassword.Detail, unknownUser.Detail, "failures must not reveal which field was wrong")

	resp = s.MakeRequest(fiber.MethodPost, "/auth/login", `{"username":"bob"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogout_RevokesToken() {
	session := s.Register("bob")

	resp := s.MakeRequest(fiber.MethodPost, "/auth/logout", "", session.Token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	resp = s.MakeRequest(fiber.MethodGet, "/user/me", "", session.Token)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	// A fresh login still works.
	token := s.Login("bob", "password123")
	resp = s.MakeRequest(fiber.MethodGet, "/user/me", "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}

func (s *AuthTestSuite) TestLogout_Unauthenticated() {
	resp := s.MakeRequest(http.MethodPost, "/auth/logout", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
