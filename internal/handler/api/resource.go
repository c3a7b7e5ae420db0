package api

import (
	"errors"
	"fmt"
	"net/http"

	"swimapi/internal/domain/resource"
	resdto "swimapi/internal/handler/dto/response"
	"swimapi/internal/handler/httperr"
	"swimapi/internal/pkg/schema"
	"swimapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resources usecase.ResourceUseCase
}

func NewResourceHandler(resources usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resources.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResources(resources))
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Resource")
	if !ok {
		return
	}

	res, err := h.resources.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Resource %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResource(res))
}

func (h *ResourceHandler) Create(c *gin.Context) {
	params, ok := bindResourceBody(c)
	if !ok {
		return
	}

	created, err := h.resources.Create(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrResourceConflict) {
			httperr.AbortWithError(c, http.StatusConflict, err, "A resource with these details already exists.", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResource(created))
}

// Replace resolves the target before reading the body, so an unknown id is
// 404 regardless of what the payload looks like.
func (h *ResourceHandler) Replace(c *gin.Context) {
	id, ok := parseID(c, "Resource")
	if !ok {
		return
	}

	if _, err := h.resources.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Resource %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	params, ok := bindResourceBody(c)
	if !ok {
		return
	}

	err := h.resources.Replace(c.Request.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Resource %d not found.", id), nil)
		case errors.Is(err, usecase.ErrResourceConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "A resource with these details already exists.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Resource")
	if !ok {
		return
	}

	err := h.resources.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Resource %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindResourceBody(c *gin.Context) (usecase.ResourceParams, bool) {
	doc, err := decodeBody(c)
	if err != nil {
		abortBodyError(c, err)
		return usecase.ResourceParams{}, false
	}
	if err := resource.BodySchema.Validate(doc); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return usecase.ResourceParams{}, false
	}

	return usecase.ResourceParams{
		Name:        schema.StringOf(doc, "name"),
		Description: schema.StringPtrOf(doc, "description"),
		Type:        resource.Type(schema.StringOf(doc, "resource_type")),
	}, true
}
