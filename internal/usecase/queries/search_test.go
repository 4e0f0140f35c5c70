//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/usecase/queries"
	queriesmock "staybook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type searchMocks struct {
	hotels       *queriesmock.MockHotelReadStore
	rooms        *queriesmock.MockRoomReadStore
	availability *queriesmock.MockAvailabilityReadStore
}

func newSearchQueries(t *testing.T) (searchMocks, queries.SearchQueries) {
	ctrl := gomock.NewController(t)
	m := searchMocks{
		hotels:       queriesmock.NewMockHotelReadStore(ctrl),
		rooms:        queriesmock.NewMockRoomReadStore(ctrl),
		availability: queriesmock.NewMockAvailabilityReadStore(ctrl),
	}
	return m, queries.NewSearchQueries(m.hotels, m.rooms, m.availability)
}

func hotelView(city string) *queries.HotelView {
	return &queries.HotelView{
		ID:         uuid.New(),
		Name:       "Harbor View Hotel",
		Address:    "1 Quay Street",
		City:       city,
		State:      "WA",
		Country:    "USA",
		StarRating: 4,
	}
}

func roomView(hotelID uuid.UUID, capacity int32, price int64) *queries.RoomView {
	return &queries.RoomView{
		ID:                 uuid.New(),
		HotelID:            hotelID,
		RoomType:           "Deluxe Double",
		Capacity:           capacity,
		PricePerNightCents: price,
		TotalRooms:         5,
	}
}

func days(views ...*queries.DayAvailabilityView) []*queries.DayAvailabilityView {
	return views
}

func day(d time.Time, available int32, price int64) *queries.DayAvailabilityView {
	return &queries.DayAvailabilityView{Date: d, AvailableRooms: available, PriceCents: price}
}

func TestSearchHotels(t *testing.T) {
	ctx := context.Background()
	checkIn, checkOut := date(2026, 9, 1), date(2026, 9, 2)

	baseInput := queries.SearchHotelsInput{
		City:         "Seattle",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    2,
		NumRooms:     1,
	}

	t.Run("returns offers priced over the whole stay", func(t *testing.T) {
		m, q := newSearchQueries(t)
		hotel := hotelView("Seattle")
		room := roomView(hotel.ID, 2, 10000)

		m.hotels.EXPECT().Search(gomock.Any(), "Seattle", (*int32)(nil)).Return([]*queries.HotelView{hotel}, nil)
		m.rooms.EXPECT().FindRoomsByHotel(gomock.Any(), hotel.ID).Return([]*queries.RoomView{room}, nil)
		m.availability.EXPECT().FindEffectiveRange(gomock.Any(), room.ID, checkIn, checkOut).
			Return(days(day(checkIn, 3, 10000), day(checkOut, 3, 12000)), nil)

		results, err := q.SearchHotels(ctx, baseInput)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Len(t, results[0].Rooms, 1)

		offer := results[0].Rooms[0]
		assert.Equal(t, int64(22000), offer.TotalPriceCents)
		assert.Equal(t, int64(10000), offer.MinNightlyCents)
	})

	t.Run("multi-room totals multiply the nightly prices", func(t *testing.T) {
		m, q := newSearchQueries(t)
		hotel := hotelView("Seattle")
		room := roomView(hotel.ID, 2, 10000)

		m.hotels.EXPECT().Search(gomock.Any(), "Seattle", (*int32)(nil)).Return([]*queries.HotelView{hotel}, nil)
		m.rooms.EXPECT().FindRoomsByHotel(gomock.Any(), hotel.ID).Return([]*queries.RoomView{room}, nil)
		m.availability.EXPECT().FindEffectiveRange(gomock.Any(), room.ID, checkIn, checkOut).
			Return(days(day(checkIn, 3, 10000), day(checkOut, 3, 12000)), nil)

		input := baseInput
		input.NumGuests = 4
		input.NumRooms = 2

		results, err := q.SearchHotels(ctx, input)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(44000), results[0].Rooms[0].TotalPriceCents)
	})

	t.Run("a missing ledger night disqualifies the room", func(t *testing.T) {
		m, q := newSearchQueries(t)
		hotel := hotelView("Seattle")
		room := roomView(hotel.ID, 2, 10000)

		m.hotels.EXPECT().Search(gomock.Any(), "Seattle", (*int32)(nil)).Return([]*queries.HotelView{hotel}, nil)
		m.rooms.EXPECT().FindRoomsByHotel(gomock.Any(), hotel.ID).Return([]*queries.RoomView{room}, nil)
		m.availability.EXPECT().FindEffectiveRange(gomock.Any(), room.ID, checkIn, checkOut).
			Return(days(day(checkIn, 3, 10000)), nil)

		results, err := q.SearchHotels(ctx, baseInput)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("a night with too few rooms disqualifies the room", func(t *testing.T) {
		m, q := newSearchQueries(t)
		hotel := hotelView("Seattle")
		room := roomView(hotel.ID, 2, 10000)

		m.hotels.EXPECT().Search(gomock.Any(), "Seattle", (*int32)(nil)).Return([]*queries.HotelView{hotel}, nil)
		m.rooms.EXPECT().FindRoomsByHotel(gomock.Any(), hotel.ID).Return([]*queries.RoomView{room}, nil)
		m.availability.EXPECT().FindEffectiveRange(gomock.Any(), room.ID, checkIn, checkOut).
			Return(days(day(checkIn, 3, 10000), day(checkOut, 1, 10000)), nil)

		input := baseInput
		input.NumGuests = 4
		input.NumRooms = 2

		results, err := q.SearchHotels(ctx, input)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("rooms too small for the party are skipped without a ledger lookup", func(t *testing.T) {
		m, q := newSearchQueries(t)
		hotel := hotelView("Seattle")
		small := roomView(hotel.ID, 1, 8000)

		m.hotels.EXPECT().Search(gomock.Any(), "Seattle", (*int32)(nil)).Return([]*queries.HotelView{hotel}, nil)
		m.rooms.EXPECT().FindRoomsByHotel(gomock.Any(), hotel.ID).Return([]*queries.RoomView{small}, nil)

		results, err := q.SearchHotels(ctx, baseInput)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		_, q := newSearchQueries(t)

		for _, input := range []queries.SearchHotelsInput{
			{City: "Seattle", CheckInDate: checkIn, CheckOutDate: checkOut, NumGuests: 0, NumRooms: 1},
			{City: "Seattle", CheckInDate: checkIn, CheckOutDate: checkOut, NumGuests: 2, NumRooms: 0},
			{City: "Seattle", CheckInDate: checkOut, CheckOutDate: checkIn, NumGuests: 2, NumRooms: 1},
		} {
			_, err := q.SearchHotels(ctx, input)
			require.ErrorIs(t, err, queries.ErrInvalidSearchInput)
		}
	})

	t.Run("price filters compare against the cheapest night", func(t *testing.T) {
		cases := []struct {
			name     string
			min, max int64
			useMin   bool
			useMax   bool
			kept     bool
		}{
			{name: "within bounds", min: 9000, max: 11000, useMin: true, useMax: true, kept: true},
			{name: "below minimum", min: 11000, useMin: true, kept: false},
			{name: "above maximum", max: 9000, useMax: true, kept: false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m, q := newSearchQueries(t)
				hotel := hotelView("Seattle")
				room := roomView(hotel.ID, 2, 10000)

				m.hotels.EXPECT().Search(gomock.Any(), "Seattle", (*int32)(nil)).Return([]*queries.HotelView{hotel}, nil)
				m.rooms.EXPECT().FindRoomsByHotel(gomock.Any(), hotel.ID).Return([]*queries.RoomView{room}, nil)
				m.availability.EXPECT().FindEffectiveRange(gomock.Any(), room.ID, checkIn, checkOut).
					Return(days(day(checkIn, 3, 10000), day(checkOut, 3, 12000)), nil)

				input := baseInput
				if tc.useMin {
					input.MinPriceCents = &tc.min
				}
				if tc.useMax {
					input.MaxPriceCents = &tc.max
				}

				results, err := q.SearchHotels(ctx, input)
				require.NoError(t, err)
				if tc.kept {
					require.Len(t, results, 1)
				} else {
					assert.Empty(t, results)
				}
			})
		}
	})

	t.Run("star rating filter is passed through", func(t *testing.T) {
		m, q := newSearchQueries(t)
		minStars := int32(4)

		m.hotels.EXPECT().Search(gomock.Any(), "Seattle", &minStars).Return(nil, nil)

		input := baseInput
		input.MinStarRating = &minStars

		results, err := q.SearchHotels(ctx, input)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
