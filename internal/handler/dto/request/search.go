package request

import (
	"time"

	"staybook/internal/usecase/queries"
)

// SearchHotelsRequest binds from query parameters.
type SearchHotelsRequest struct {
	City          string `form:"city" binding:"required"`
	CheckInDate   string `form:"check_in_date" binding:"required"`
	CheckOutDate  string `form:"check_out_date" binding:"required"`
	NumGuests     int32  `form:"num_guests,default=1" binding:"min=1"`
	NumRooms      int32  `form:"num_rooms,default=1" binding:"min=1"`
	MinStarRating *int32 `form:"min_star_rating,omitempty"`
	MinPriceCents *int64 `form:"min_price_cents,omitempty"`
	MaxPriceCents *int64 `form:"max_price_cents,omitempty"`
}

func (r SearchHotelsRequest) ToInput() (queries.SearchHotelsInput, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckInDate)
	if err != nil {
		return queries.SearchHotelsInput{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOutDate)
	if err != nil {
		return queries.SearchHotelsInput{}, err
	}

	return queries.SearchHotelsInput{
		City:          r.City,
		MinStarRating: r.MinStarRating,
		MinPriceCents: r.MinPriceCents,
		MaxPriceCents: r.MaxPriceCents,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NumGuests:     r.NumGuests,
		NumRooms:      r.NumRooms,
	}, nil
}
