package response

import (
	"time"

	"staybook/internal/usecase/queries"
)

type DayAvailabilityResponse struct {
	Date           string `json:"date"`
	AvailableRooms int32  `json:"availableRooms"`
	PriceCents     int64  `json:"priceCents"`
}

func FromDayAvailabilityViews(views []*queries.DayAvailabilityView) []*DayAvailabilityResponse {
	result := make([]*DayAvailabilityResponse, len(views))
	for i, v := range views {
		result[i] = &DayAvailabilityResponse{
			Date:           v.Date.Format(time.DateOnly),
			AvailableRooms: v.AvailableRooms,
			PriceCents:     v.PriceCents,
		}
	}
	return result
}
