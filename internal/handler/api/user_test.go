//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"swimapi/internal/domain/user"
	"swimapi/internal/handler/api"
	resdto "swimapi/internal/handler/dto/response"
	"swimapi/internal/pkg/errs"
	"swimapi/internal/usecase"
	"swimapi/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	stub    *stubUserUseCase
	handler *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.stub = &stubUserUseCase{}
	s.handler = api.NewUserHandler(s.stub)

	s.router.GET("/api/users", s.handler.List)
	s.router.POST("/api/users", s.handler.Create)
	s.router.GET("/api/users/:id", s.handler.Get)
	s.router.PUT("/api/users/:id", s.handler.Replace)
	s.router.DELETE("/api/users/:id", s.handler.Delete)
	s.router.POST("/api/admin/users", s.handler.CreateAdmin)
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func sampleUser() *user.User {
	return &user.User{
		ID:        1,
		Name:      "Alice",
		Email:     "alice@example.com",
		APIKey:    "0f3b7a1c9d2e4f6a8b0c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f2a",
		Role:      user.RoleCustomer,
		CreatedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func userBody() map[string]any {
	return map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: returns users without api keys", func() {
		s.stub.list = func(_ context.Context) ([]*user.User, error) {
			return []*user.User{sampleUser()}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users", nil, "")

		var body []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(1), body[0].UserID)
		s.Equal("customer", body[0].UserType)
		s.Empty(body[0].APIKey)
		s.NotContains(rec.Body.String(), "api_key")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 with the user", func() {
		s.stub.get = func(_ context.Context, id int64) (*user.User, error) {
			s.Equal(int64(1), id)
			return sampleUser(), nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/1", nil, "")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("alice@example.com", body.Email)
	})

	s.Run("error: unknown id returns 404 naming the id", func() {
		s.stub.get = func(_ context.Context, _ int64) (*user.User, error) {
			return nil, usecase.ErrUserNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User 99 not found.")
	})

	s.Run("error: non-numeric id returns 404 without touching the store", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User abc not found.")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *UserHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 including the issued api key", func() {
		s.stub.create = func(_ context.Context, params usecase.CreateUserParams) (*user.User, error) {
			s.Equal("Alice", params.Name)
			s.Equal("alice@example.com", params.Email)
			return sampleUser(), nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", userBody(), "")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Len(body.APIKey, 64)
	})

	s.Run("error: duplicate email returns 409 naming the email", func() {
		s.stub.create = func(_ context.Context, _ usecase.CreateUserParams) (*user.User, error) {
			return nil, usecase.ErrEmailTaken
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", userBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "User with email 'alice@example.com' already exists.")
	})

	s.Run("error: missing required field returns 400", func() {
		body := userBody()
		delete(body, "email")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'email' is a required property")
	})

	s.Run("error: invalid user_type returns 400", func() {
		body := userBody()
		body["user_type"] = "superuser"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'user_type' must be one of")
	})

	s.Run("error: non-json content type returns 415 before the store is touched", func() {
		s.stub.create = func(_ context.Context, _ usecase.CreateUserParams) (*user.User, error) {
			s.FailNow("store must not be reached")
			return nil, nil
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/users",
			"text/plain", []byte("name=Alice"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnsupportedMediaType, "Request content type must be application/json.")
	})

	s.Run("error: json array body returns 400", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/users",
			"application/json", []byte(`["Alice"]`), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Request body must be a JSON object.")
	})

	s.Run("error: unparseable json returns 415", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/users",
			"application/json", []byte(`{"name":`), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnsupportedMediaType, "Request content type must be application/json.")
	})
}

// ================================================================================
// TestCreateAdmin
// ================================================================================

func (s *UserHandlerTestSuite) TestCreateAdmin() {
	s.Run("success: routes through the admin-forcing path", func() {
		s.stub.createAdmin = func(_ context.Context, params usecase.CreateUserParams) (*user.User, error) {
			u := sampleUser()
			u.Role = user.RoleAdmin
			return u, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/users", userBody(), "")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("admin", body.UserType)
	})
}

// ================================================================================
// TestReplace / TestDelete
// ================================================================================

func (s *UserHandlerTestSuite) TestReplace() {
	authorizeOK := func(_ context.Context, id int64, token string) (*user.User, error) {
		s.Equal("owner-key", token)
		return sampleUser(), nil
	}

	s.Run("success: returns 204", func() {
		s.stub.authorize = authorizeOK
		s.stub.replace = func(_ context.Context, id int64, token string, params usecase.CreateUserParams) error {
			s.Equal(int64(1), id)
			s.Equal("owner-key", token)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/users/1", userBody(), "owner-key")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: missing key returns 403 with the header name", func() {
		s.stub.authorize = func(_ context.Context, _ int64, _ string) (*user.User, error) {
			return nil, usecase.ErrMissingAPIKey
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/users/1", userBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Missing swimapi-api-key header.")
	})

	s.Run("error: wrong key returns 403", func() {
		s.stub.authorize = func(_ context.Context, _ int64, _ string) (*user.User, error) {
			return nil, usecase.ErrInvalidAPIKey
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/users/1", userBody(), "not-the-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid API key.")
	})

	s.Run("error: unknown id wins over a bad key", func() {
		// The target is loaded first, so NotFound surfaces even when the
		// caller's key would also have failed verification.
		s.stub.authorize = func(_ context.Context, _ int64, _ string) (*user.User, error) {
			return nil, usecase.ErrUserNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/users/99", userBody(), "not-the-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User 99 not found.")
	})

	s.Run("error: unknown id wins over a non-json body", func() {
		s.stub.authorize = func(_ context.Context, _ int64, _ string) (*user.User, error) {
			return nil, usecase.ErrUserNotFound
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, "/api/users/999",
			"text/plain", []byte("name=Alice"), "owner-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User 999 not found.")
	})

	s.Run("error: wrong key wins over an invalid body", func() {
		s.stub.authorize = func(_ context.Context, _ int64, _ string) (*user.User, error) {
			return nil, usecase.ErrInvalidAPIKey
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, "/api/users/1",
			"application/json", []byte(`["Alice"]`), "not-the-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid API key.")
	})

	s.Run("error: email collision on replace returns 409", func() {
		s.stub.authorize = authorizeOK
		s.stub.replace = func(_ context.Context, _ int64, _ string, _ usecase.CreateUserParams) error {
			return usecase.ErrEmailTaken
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/users/1", userBody(), "owner-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "User with email 'alice@example.com' already exists.")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		s.stub.remove = func(_ context.Context, id int64, token string) error {
			s.Equal(int64(1), id)
			s.Equal("owner-key", token)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/users/1", nil, "owner-key")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: store failure returns 500", func() {
		s.stub.remove = func(_ context.Context, _ int64, _ string) error {
			return errs.New("connection refused")
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/users/1", nil, "owner-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
