package queries

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/errs"
)

var ErrInvalidSearchInput = errs.New("invalid search input")

type SearchHotelsInput struct {
	City          string
	MinStarRating *int32
	MinPriceCents *int64
	MaxPriceCents *int64
	CheckInDate   time.Time
	CheckOutDate  time.Time
	NumGuests     int32
	NumRooms      int32
}

// RoomOffer is a room type that can host the whole stay: every night of the
// range has a ledger record with enough remaining units.
type RoomOffer struct {
	Room            *RoomView `json:"room"`
	TotalPriceCents int64     `json:"total_price_cents"`
	MinNightlyCents int64     `json:"min_nightly_cents"`
}

type HotelSearchResult struct {
	Hotel *HotelView   `json:"hotel"`
	Rooms []*RoomOffer `json:"rooms"`
}

type SearchQueries interface {
	SearchHotels(ctx context.Context, input SearchHotelsInput) ([]*HotelSearchResult, error)
}

type searchQueriesImpl struct {
	hotels       HotelReadStore
	rooms        RoomReadStore
	availability AvailabilityReadStore
}

func NewSearchQueries(hotels HotelReadStore, rooms RoomReadStore, availability AvailabilityReadStore) SearchQueries {
	return &searchQueriesImpl{hotels: hotels, rooms: rooms, availability: availability}
}

// SearchHotels returns hotels in the city that have at least one room type
// able to host the stay. A room type qualifies when its capacity covers the
// party and every night of the stay has enough remaining units.
func (q *searchQueriesImpl) SearchHotels(ctx context.Context, input SearchHotelsInput) ([]*HotelSearchResult, error) {
	if input.NumGuests <= 0 || input.NumRooms <= 0 {
		return nil, ErrInvalidSearchInput
	}

	stay, err := booking.NewStayRange(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchInput)
	}

	hotels, err := q.hotels.Search(ctx, input.City, input.MinStarRating)
	if err != nil {
		return nil, err
	}

	results := make([]*HotelSearchResult, 0, len(hotels))
	for _, hotel := range hotels {
		rooms, err := q.rooms.FindRoomsByHotel(ctx, hotel.ID)
		if err != nil {
			return nil, err
		}

		var offers []*RoomOffer
		for _, room := range rooms {
			if input.NumGuests > room.Capacity*input.NumRooms {
				continue
			}

			offer, ok, err := q.offerFor(ctx, room, stay, input.NumRooms)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			// Price filters apply to the cheapest night of the stay.
			if input.MinPriceCents != nil && offer.MinNightlyCents < *input.MinPriceCents {
				continue
			}
			if input.MaxPriceCents != nil && offer.MinNightlyCents > *input.MaxPriceCents {
				continue
			}
			offers = append(offers, offer)
		}

		if len(offers) > 0 {
			results = append(results, &HotelSearchResult{Hotel: hotel, Rooms: offers})
		}
	}

	return results, nil
}

func (q *searchQueriesImpl) offerFor(ctx context.Context, room *RoomView, stay booking.StayRange, numRooms int32) (*RoomOffer, bool, error) {
	days, err := q.availability.FindEffectiveRange(ctx, room.ID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, false, err
	}

	// A missing ledger record for any night disqualifies the room.
	if len(days) != stay.Nights() {
		return nil, false, nil
	}

	var total int64
	minNightly := days[0].PriceCents
	for _, day := range days {
		if day.AvailableRooms < numRooms {
			return nil, false, nil
		}
		total += day.PriceCents
		if day.PriceCents < minNightly {
			minNightly = day.PriceCents
		}
	}

	return &RoomOffer{
		Room:            room,
		TotalPriceCents: total * int64(numRooms),
		MinNightlyCents: minNightly,
	}, true, nil
}
