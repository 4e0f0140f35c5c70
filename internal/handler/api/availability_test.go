//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/httptest"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	managerMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleHotelManager)
		c.Next()
	}

	s.router.GET("/rooms/:id/availability", s.handler.GetRoomAvailability)
	s.router.PUT("/rooms/:id/availability", managerMiddleware, s.handler.SetRoomAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestGetRoomAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetRoomAvailability() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/availability?start_date=2026-09-01&end_date=2026-09-03"

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns per-day availability", func() {
		views := []*queries.DayAvailabilityView{
			{Date: start, AvailableRooms: 5, PriceCents: 10000},
			{Date: start.AddDate(0, 0, 1), AvailableRooms: 4, PriceCents: 12000},
			{Date: end, AvailableRooms: 5, PriceCents: 10000},
		}
		s.mockQueries.EXPECT().GetRoomAvailability(gomock.Any(), roomID, start, end).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 3)
		s.Equal("2026-09-01", response[0].Date)
		s.Equal(int32(5), response[0].AvailableRooms)
		s.Equal(int64(12000), response[1].PriceCents)
	})

	s.Run("error: 400 Bad Request for invalid room UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/invalid-uuid/availability?start_date=2026-09-01&end_date=2026-09-03", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 400 Bad Request for malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/"+roomID.String()+"/availability?start_date=Sep-1&end_date=2026-09-03", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start_date")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				queriesError:   queries.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "inverted range",
				queriesError:   queries.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "end_date must not be before start_date",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetRoomAvailability(gomock.Any(), roomID, start, end).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSetRoomAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestSetRoomAvailability() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/availability"

	reqBody := map[string]any{
		"start_date":      "2026-09-01",
		"end_date":        "2026-09-03",
		"available_rooms": 5,
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetAvailabilityRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request for malformed body dates", func() {
		bad := map[string]any{
			"start_date":      "September 1st",
			"end_date":        "2026-09-03",
			"available_rooms": 5,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not authorized",
				commandsError:  commands.ErrNotAuthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "invalid availability",
				commandsError:  commands.ErrInvalidAvailability,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid availability input",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetAvailabilityRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
