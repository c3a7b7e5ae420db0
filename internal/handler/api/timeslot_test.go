//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"swimapi/internal/domain/reservation"
	"swimapi/internal/domain/timeslot"
	"swimapi/internal/handler/api"
	resdto "swimapi/internal/handler/dto/response"
	"swimapi/internal/usecase"
	"swimapi/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type TimeslotHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	stub    *stubTimeslotUseCase
	handler *api.TimeslotHandler
}

func (s *TimeslotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.stub = &stubTimeslotUseCase{}
	s.handler = api.NewTimeslotHandler(s.stub)

	// Admin gating is covered by the resource suite; these routes go bare so
	// the handler behavior is isolated.
	s.router.GET("/api/timeslots", s.handler.List)
	s.router.POST("/api/timeslots", s.handler.Create)
	s.router.GET("/api/timeslots/:id", s.handler.Get)
	s.router.PUT("/api/timeslots/:id", s.handler.Replace)
	s.router.DELETE("/api/timeslots/:id", s.handler.Delete)
}

func TestTimeslotHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimeslotHandlerTestSuite))
}

func sampleSlot() *timeslot.Timeslot {
	return &timeslot.Timeslot{
		ID:         5,
		ResourceID: 3,
		StartTime:  time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func timeslotBody() map[string]any {
	return map[string]any{
		"resource_id": float64(3),
		"start_time":  "2026-06-01T09:00:00Z",
		"end_time":    "2026-06-01T10:00:00Z",
	}
}

func (s *TimeslotHandlerTestSuite) TestList() {
	s.Run("success: embeds the reservation or null per slot", func() {
		s.stub.list = func(_ context.Context) ([]*usecase.TimeslotDetail, error) {
			booked := sampleSlot()
			free := sampleSlot()
			free.ID = 6
			return []*usecase.TimeslotDetail{
				{Slot: booked, Reservation: &reservation.Reservation{ID: 11, UserID: 2, SlotID: booked.ID}},
				{Slot: free},
			}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots", nil, "")

		var body []resdto.TimeslotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Require().NotNil(body[0].Reservation)
		s.Equal(int64(11), body[0].Reservation.ReservationID)
		s.Nil(body[1].Reservation)
		s.Contains(rec.Body.String(), `"reservation":null`)
	})
}

func (s *TimeslotHandlerTestSuite) TestGet() {
	s.Run("success: free slot carries a null reservation", func() {
		s.stub.get = func(_ context.Context, id int64) (*usecase.TimeslotDetail, error) {
			s.Equal(int64(5), id)
			return &usecase.TimeslotDetail{Slot: sampleSlot()}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots/5", nil, "")

		var body resdto.TimeslotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5), body.SlotID)
		s.Nil(body.Reservation)
	})

	s.Run("error: unknown id returns 404", func() {
		s.stub.get = func(_ context.Context, _ int64) (*usecase.TimeslotDetail, error) {
			return nil, usecase.ErrTimeslotNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Timeslot 42 not found.")
	})
}

func (s *TimeslotHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 with parsed window", func() {
		s.stub.create = func(_ context.Context, params usecase.TimeslotParams) (*usecase.TimeslotDetail, error) {
			s.Equal(int64(3), params.ResourceID)
			s.Equal(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), params.StartTime)
			return &usecase.TimeslotDetail{Slot: sampleSlot()}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/timeslots", timeslotBody(), "")

		var body resdto.TimeslotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(3), body.ResourceID)
	})

	s.Run("success: offset-less timestamps are accepted as UTC", func() {
		s.stub.create = func(_ context.Context, params usecase.TimeslotParams) (*usecase.TimeslotDetail, error) {
			s.Equal(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), params.StartTime)
			return &usecase.TimeslotDetail{Slot: sampleSlot()}, nil
		}

		body := timeslotBody()
		body["start_time"] = "2026-06-01T09:00:00"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/timeslots", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: malformed start_time returns 400", func() {
		body := timeslotBody()
		body["start_time"] = "yesterday"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/timeslots", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'start_time' is not a valid ISO 8601 date-time")
	})

	s.Run("error: fractional resource_id returns 400", func() {
		body := timeslotBody()
		body["resource_id"] = 3.5

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/timeslots", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'resource_id' is not of type 'integer'")
	})

	s.Run("error: constraint conflict returns 409", func() {
		s.stub.create = func(_ context.Context, _ usecase.TimeslotParams) (*usecase.TimeslotDetail, error) {
			return nil, usecase.ErrTimeslotConflict
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/timeslots", timeslotBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Failed to create timeslot due to a conflict.")
	})
}

func (s *TimeslotHandlerTestSuite) TestReplace() {
	getOK := func(_ context.Context, id int64) (*usecase.TimeslotDetail, error) {
		return &usecase.TimeslotDetail{Slot: sampleSlot()}, nil
	}

	s.Run("success: returns 204", func() {
		s.stub.get = getOK
		s.stub.replace = func(_ context.Context, id int64, _ usecase.TimeslotParams) error {
			s.Equal(int64(5), id)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/timeslots/5", timeslotBody(), "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown id wins over a non-json body", func() {
		s.stub.get = func(_ context.Context, _ int64) (*usecase.TimeslotDetail, error) {
			return nil, usecase.ErrTimeslotNotFound
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, "/api/timeslots/42",
			"text/plain", []byte("not json"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Timeslot 42 not found.")
	})

	s.Run("error: conflict on replace uses the update wording", func() {
		s.stub.get = getOK
		s.stub.replace = func(_ context.Context, _ int64, _ usecase.TimeslotParams) error {
			return usecase.ErrTimeslotConflict
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/timeslots/5", timeslotBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Failed to update timeslot due to a conflict.")
	})
}

func (s *TimeslotHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		s.stub.remove = func(_ context.Context, id int64) error {
			s.Equal(int64(5), id)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/timeslots/5", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown id returns 404", func() {
		s.stub.remove = func(_ context.Context, _ int64) error {
			return usecase.ErrTimeslotNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/timeslots/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Timeslot 42 not found.")
	})
}
