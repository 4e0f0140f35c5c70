package queries

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Country     string     `json:"country"`
	PostalCode  *string    `json:"postal_code,omitempty"`
	Description *string    `json:"description,omitempty"`
	StarRating  int32      `json:"star_rating"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	RoomType           string    `json:"room_type"`
	Description        *string   `json:"description,omitempty"`
	Capacity           int32     `json:"capacity"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	TotalRooms         int32     `json:"total_rooms"`
	Amenities          *string   `json:"amenities,omitempty"`
	ImageURLs          *string   `json:"image_urls,omitempty"`
}

type HotelQueries interface {
	ListHotels(ctx context.Context) ([]*HotelView, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, []*RoomView, error)
}

type HotelReadStore interface {
	FindAll(ctx context.Context) ([]*HotelView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	Search(ctx context.Context, city string, minStarRating *int32) ([]*HotelView, error)
}

type RoomReadStore interface {
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

type hotelQueriesImpl struct {
	hotels HotelReadStore
	rooms  RoomReadStore
}

func NewHotelQueries(hotels HotelReadStore, rooms RoomReadStore) HotelQueries {
	return &hotelQueriesImpl{hotels: hotels, rooms: rooms}
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context) ([]*HotelView, error) {
	return q.hotels.FindAll(ctx)
}

func (q *hotelQueriesImpl) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, []*RoomView, error) {
	hotel, err := q.hotels.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, nil, err
	}

	rooms, err := q.rooms.FindRoomsByHotel(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return hotel, rooms, nil
}
