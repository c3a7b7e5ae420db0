package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"swimapi/internal/domain/user"
	resdto "swimapi/internal/handler/dto/response"
	"swimapi/internal/handler/httperr"
	"swimapi/internal/handler/middleware"
	"swimapi/internal/pkg/schema"
	"swimapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users usecase.UserUseCase
}

func NewUserHandler(users usecase.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsers(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "User")
	if !ok {
		return
	}

	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("User %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// Create registers a user and returns the record including the freshly
// generated API key.
func (h *UserHandler) Create(c *gin.Context) {
	h.create(c, h.users.Create)
}

// CreateAdmin is the admin-creation endpoint: same body contract, but the
// stored role is unconditionally admin.
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	h.create(c, h.users.CreateAdmin)
}

func (h *UserHandler) create(c *gin.Context, insert func(ctx context.Context, params usecase.CreateUserParams) (*user.User, error)) {
	params, ok := bindUserBody(c)
	if !ok {
		return
	}

	created, err := insert(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err,
				fmt.Sprintf("User with email '%s' already exists.", params.Email), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreatedUser(created))
}

// Replace checks the target and the caller's key before the body: a missing
// user is 404 and a wrong key 403 even when the payload itself would have
// been rejected.
func (h *UserHandler) Replace(c *gin.Context) {
	id, ok := parseID(c, "User")
	if !ok {
		return
	}

	token := middleware.Token(c)
	if _, err := h.users.Authorize(c.Request.Context(), id, token); err != nil {
		h.abortItemError(c, id, "", err)
		return
	}

	params, ok := bindUserBody(c)
	if !ok {
		return
	}

	err := h.users.Replace(c.Request.Context(), id, token, params)
	if err != nil {
		h.abortItemError(c, id, params.Email, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "User")
	if !ok {
		return
	}

	err := h.users.Delete(c.Request.Context(), id, middleware.Token(c))
	if err != nil {
		h.abortItemError(c, id, "", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) abortItemError(c *gin.Context, id int64, email string, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("User %d not found.", id), nil)
	case errors.Is(err, usecase.ErrMissingAPIKey), errors.Is(err, usecase.ErrInvalidAPIKey):
		httperr.AbortWithError(c, http.StatusForbidden, err, middleware.ForbiddenMessage(err), nil)
	case errors.Is(err, usecase.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err,
			fmt.Sprintf("User with email '%s' already exists.", email), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// bindUserBody runs the media-type check, then the body schema; either
// failure aborts the request before the store is touched.
func bindUserBody(c *gin.Context) (usecase.CreateUserParams, bool) {
	doc, err := decodeBody(c)
	if err != nil {
		abortBodyError(c, err)
		return usecase.CreateUserParams{}, false
	}
	if err := user.BodySchema.Validate(doc); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return usecase.CreateUserParams{}, false
	}

	return usecase.CreateUserParams{
		Name:  schema.StringOf(doc, "name"),
		Email: schema.StringOf(doc, "email"),
		Role:  user.Role(schema.StringOf(doc, "user_type")),
	}, true
}
