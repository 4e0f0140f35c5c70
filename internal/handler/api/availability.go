package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
	}
}

// @Summary Get room availability
// @Description List remaining units and nightly price for a room over a date span
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *AvailabilityHandler) GetRoomAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	start, err := time.Parse(time.DateOnly, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start_date, expected YYYY-MM-DD",
		})
		return
	}
	end, err := time.Parse(time.DateOnly, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end_date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.availabilityQueries.GetRoomAvailability(c.Request.Context(), roomID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, queries.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "end_date must not be before start_date",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailabilityViews(views))
}

// @Summary Set room availability
// @Description Seed or overwrite the availability ledger for a date span
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.SetAvailabilityRequest true "Availability request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/availability [put]
func (h *AvailabilityHandler) SetRoomAvailability(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput(roomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.availabilityCommands.SetAvailabilityRange(c.Request.Context(), actor, input); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrInvalidAvailability):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability input",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
