package api

import (
	"errors"
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotelQueries  queries.HotelQueries
	searchQueries queries.SearchQueries
}

func NewHotelHandler(hotelQueries queries.HotelQueries, searchQueries queries.SearchQueries) *HotelHandler {
	return &HotelHandler{
		hotelQueries:  hotelQueries,
		searchQueries: searchQueries,
	}
}

// @Summary List hotels
// @Description List all hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	views, err := h.hotelQueries.ListHotels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Description Get hotel with its rooms
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	hotel, rooms, err := h.hotelQueries.GetHotel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.HotelDetailResponse{
		Hotel: resdto.FromHotelView(hotel),
		Rooms: resdto.FromRoomViews(rooms),
	})
}

// @Summary Search hotels
// @Description Search hotels with room availability for a stay
// @Tags hotels
// @Produce json
// @Param city query string true "City name"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Param num_guests query int false "Number of guests"
// @Param num_rooms query int false "Number of rooms"
// @Param min_star_rating query int false "Minimum star rating"
// @Param min_price_cents query int false "Minimum nightly price in cents"
// @Param max_price_cents query int false "Maximum nightly price in cents"
// @Success 200 {array} resdto.HotelSearchResponse
// @Failure 400 {object} map[string]string
// @Router /hotels/search [get]
func (h *HotelHandler) SearchHotels(c *gin.Context) {
	var req reqdto.SearchHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	results, err := h.searchQueries.SearchHotels(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid search input",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelSearchResults(results))
}
