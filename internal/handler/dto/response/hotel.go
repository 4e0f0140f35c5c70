package response

import (
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	PostalCode  *string   `json:"postalCode,omitempty"`
	Description *string   `json:"description,omitempty"`
	StarRating  int32     `json:"starRating"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

type RoomResponse struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotelId"`
	RoomType           string    `json:"roomType"`
	Description        *string   `json:"description,omitempty"`
	Capacity           int32     `json:"capacity"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	TotalRooms         int32     `json:"totalRooms"`
	Amenities          *string   `json:"amenities,omitempty"`
	ImageURLs          *string   `json:"imageUrls,omitempty"`
}

type HotelDetailResponse struct {
	Hotel *HotelResponse  `json:"hotel"`
	Rooms []*RoomResponse `json:"rooms"`
}

type RoomOfferResponse struct {
	Room            *RoomResponse `json:"room"`
	TotalPriceCents int64         `json:"totalPriceCents"`
	MinNightlyCents int64         `json:"minNightlyCents"`
}

type HotelSearchResponse struct {
	Hotel *HotelResponse       `json:"hotel"`
	Rooms []*RoomOfferResponse `json:"rooms"`
}

func FromHotelView(view *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:          view.ID,
		Name:        view.Name,
		Address:     view.Address,
		City:        view.City,
		State:       view.State,
		Country:     view.Country,
		PostalCode:  view.PostalCode,
		Description: view.Description,
		StarRating:  view.StarRating,
		ImageURL:    view.ImageURL,
	}
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	result := make([]*HotelResponse, len(views))
	for i, v := range views {
		result[i] = FromHotelView(v)
	}
	return result
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                 view.ID,
		HotelID:            view.HotelID,
		RoomType:           view.RoomType,
		Description:        view.Description,
		Capacity:           view.Capacity,
		PricePerNightCents: view.PricePerNightCents,
		TotalRooms:         view.TotalRooms,
		Amenities:          view.Amenities,
		ImageURLs:          view.ImageURLs,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, v := range views {
		result[i] = FromRoomView(v)
	}
	return result
}

func FromHotelSearchResults(results []*queries.HotelSearchResult) []*HotelSearchResponse {
	out := make([]*HotelSearchResponse, len(results))
	for i, r := range results {
		offers := make([]*RoomOfferResponse, len(r.Rooms))
		for j, o := range r.Rooms {
			offers[j] = &RoomOfferResponse{
				Room:            FromRoomView(o.Room),
				TotalPriceCents: o.TotalPriceCents,
				MinNightlyCents: o.MinNightlyCents,
			}
		}
		out[i] = &HotelSearchResponse{
			Hotel: FromHotelView(r.Hotel),
			Rooms: offers,
		}
	}
	return out
}
