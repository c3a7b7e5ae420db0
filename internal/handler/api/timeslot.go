package api

import (
	"errors"
	"fmt"
	"net/http"

	"swimapi/internal/domain/timeslot"
	resdto "swimapi/internal/handler/dto/response"
	"swimapi/internal/handler/httperr"
	"swimapi/internal/pkg/schema"
	"swimapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TimeslotHandler struct {
	timeslots usecase.TimeslotUseCase
}

func NewTimeslotHandler(timeslots usecase.TimeslotUseCase) *TimeslotHandler {
	return &TimeslotHandler{timeslots: timeslots}
}

func (h *TimeslotHandler) List(c *gin.Context) {
	details, err := h.timeslots.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotDetails(details))
}

func (h *TimeslotHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Timeslot")
	if !ok {
		return
	}

	detail, err := h.timeslots.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTimeslotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Timeslot %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotDetail(detail))
}

func (h *TimeslotHandler) Create(c *gin.Context) {
	params, ok := bindTimeslotBody(c)
	if !ok {
		return
	}

	created, err := h.timeslots.Create(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrTimeslotConflict) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Failed to create timeslot due to a conflict.", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimeslotDetail(created))
}

// Replace resolves the target before reading the body, so an unknown id is
// 404 regardless of what the payload looks like.
func (h *TimeslotHandler) Replace(c *gin.Context) {
	id, ok := parseID(c, "Timeslot")
	if !ok {
		return
	}

	if _, err := h.timeslots.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrTimeslotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Timeslot %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	params, ok := bindTimeslotBody(c)
	if !ok {
		return
	}

	err := h.timeslots.Replace(c.Request.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTimeslotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Timeslot %d not found.", id), nil)
		case errors.Is(err, usecase.ErrTimeslotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Failed to update timeslot due to a conflict.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TimeslotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Timeslot")
	if !ok {
		return
	}

	err := h.timeslots.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTimeslotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Timeslot %d not found.", id), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindTimeslotBody(c *gin.Context) (usecase.TimeslotParams, bool) {
	doc, err := decodeBody(c)
	if err != nil {
		abortBodyError(c, err)
		return usecase.TimeslotParams{}, false
	}
	if err := timeslot.BodySchema.Validate(doc); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return usecase.TimeslotParams{}, false
	}

	return usecase.TimeslotParams{
		ResourceID: schema.Int64Of(doc, "resource_id"),
		StartTime:  schema.TimeOf(doc, "start_time"),
		EndTime:    schema.TimeOf(doc, "end_time"),
	}, true
}
