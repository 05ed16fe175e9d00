// Package testutils runs the HTTP API against an in-memory SQLite database.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/market/infra"
	"github.com/amirasaad/market/infra/cache"
	"github.com/amirasaad/market/pkg/app"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/repository"
	pkgtestutils "github.com/amirasaad/market/pkg/testutils"
	"github.com/amirasaad/market/webapi"
	"github.com/amirasaad/market/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite serves the full application over a fresh database per test.
type E2ETestSuite struct {
	suite.Suite
	Cfg *config.App
	Uow repository.UnitOfWork
	App *fiber.App
}

// SetupTest builds a new database and app so tests never share state.
func (s *E2ETestSuite) SetupTest() {
	if s.Cfg == nil {
		s.Cfg = pkgtestutils.NewTestConfig()
	}
	db := pkgtestutils.NewTestDB(s.T())
	s.Uow = infra.NewUoW(db)
	tokens := cache.NewMemoryTokenStore(time.Minute)
	s.T().Cleanup(func() { _ = tokens.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.App = webapi.SetupApp(app.New(&app.Deps{
		Uow:    s.Uow,
		Tokens: tokens,
		Logger: logger,
	}, s.Cfg))
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// MakeRequestFrom sends GET / with the given X-Forwarded-For header and
// returns the status code.
func (s *E2ETestSuite) MakeRequestFrom(forwardedFor string) int {
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	resp.Body.Close() //nolint: errcheck
	return resp.StatusCode
}

// Decode reads a success envelope and unmarshals its data into out.
func (s *E2ETestSuite) Decode(resp *http.Response, out any) common.Response {
	defer resp.Body.Close() //nolint: errcheck
	var raw struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&raw))
	if out != nil && len(raw.Data) > 0 {
		s.Require().NoError(json.Unmarshal(raw.Data, out))
	}
	return common.Response{Status: raw.Status, Message: raw.Message}
}

// DecodeProblem reads a problem response.
func (s *E2ETestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	defer resp.Body.Close() //nolint: errcheck
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

// Session is what register and login return.
type Session struct {
	User  dto.UserRead `json:"user"`
	Token string       `json:"token"`
}

// Register signs a user up over HTTP and returns the session.
func (s *E2ETestSuite) Register(username string) Session {
	body := fmt.Sprintf(
		`{"username":%q,"email_address":"%s@example.com","password":%q,"confirm_password":%q}`,
		username, username, pkgtestutils.TestPassword, pkgtestutils.TestPassword,
	)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var session Session
	s.Decode(resp, &session)
	s.Require().NotEmpty(session.Token)
	return session
}

// Login logs in over HTTP and returns the token.
func (s *E2ETestSuite) Login(username, password string) string {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var session Session
	s.Decode(resp, &session)
	return session.Token
}

// AddItem stores an unowned item directly.
func (s *E2ETestSuite) AddItem(name, barcode, price string) *dto.ItemRead {
	return pkgtestutils.NewTestItem(s.T(), s.Uow, name, barcode, money.MustParse(price))
}

// ItemPath builds /items/{id}/{action}.
func ItemPath(id uuid.UUID, action string) string {
	if action == "" {
		return "/items/" + id.String()
	}
	return "/items/" + id.String() + "/" + action
}
