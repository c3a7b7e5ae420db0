package api

import (
	"errors"
	"fmt"
	"net/http"

	"swimapi/internal/domain/reservation"
	resdto "swimapi/internal/handler/dto/response"
	"swimapi/internal/handler/httperr"
	"swimapi/internal/handler/middleware"
	"swimapi/internal/pkg/schema"
	"swimapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservations usecase.ReservationUseCase
	guard        usecase.AuthGuard
}

func NewReservationHandler(reservations usecase.ReservationUseCase, guard usecase.AuthGuard) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, guard: guard}
}

// List is admin-gated by the router middleware.
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.reservations.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(reservations))
}

// Create books a slot for the authenticated caller. Checks run media type
// first, then the caller's key, then the body schema; user_id is stamped
// from the resolved principal, never trusted from the client.
func (h *ReservationHandler) Create(c *gin.Context) {
	doc, err := decodeBody(c)
	if err != nil {
		abortBodyError(c, err)
		return
	}

	principal, err := h.guard.ResolveByKey(c.Request.Context(), middleware.Token(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusForbidden, err, middleware.ForbiddenMessage(err), nil)
		return
	}

	if err := reservation.PostSchema.Validate(doc); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	created, err := h.reservations.Create(c.Request.Context(), principal.ID, schema.Int64Of(doc, "slot_id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotAlreadyReserved):
			httperr.AbortWithError(c, http.StatusConflict, err, "This timeslot is already reserved.", nil)
		case errors.Is(err, usecase.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Failed to create reservation due to a conflict.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Reservation")
	if !ok {
		return
	}

	res, err := h.reservations.Get(c.Request.Context(), id, middleware.Token(c))
	if err != nil {
		h.abortItemError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Reservation")
	if !ok {
		return
	}

	err := h.reservations.Delete(c.Request.Context(), id, middleware.Token(c))
	if err != nil {
		h.abortItemError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) abortItemError(c *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("Reservation %d not found.", id), nil)
	case errors.Is(err, usecase.ErrMissingAPIKey), errors.Is(err, usecase.ErrInvalidAPIKey):
		httperr.AbortWithError(c, http.StatusForbidden, err, middleware.ForbiddenMessage(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
