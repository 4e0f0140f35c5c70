//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	dombooking "staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory stand-in for the Postgres unit of work. Within runs
// the callback against a deep copy of the state and commits the copy only on
// success, so a failing callback leaves the ledger exactly as it was. The
// mutex is held for the whole callback, which serializes transactions the way
// row locks do.
type fakeUoW struct {
	mu    sync.Mutex
	state *ledgerState
}

type ledgerState struct {
	rooms     map[uuid.UUID]shared.RoomSnapshot
	inventory map[invKey]invRecord
	bookings  map[uuid.UUID]shared.BookingSnapshot
}

type invKey struct {
	roomID uuid.UUID
	date   string
}

type invRecord struct {
	available int32
	price     int64
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		state: &ledgerState{
			rooms:     make(map[uuid.UUID]shared.RoomSnapshot),
			inventory: make(map[invKey]invRecord),
			bookings:  make(map[uuid.UUID]shared.BookingSnapshot),
		},
	}
}

func (s *ledgerState) clone() *ledgerState {
	c := &ledgerState{
		rooms:     make(map[uuid.UUID]shared.RoomSnapshot, len(s.rooms)),
		inventory: make(map[invKey]invRecord, len(s.inventory)),
		bookings:  make(map[uuid.UUID]shared.BookingSnapshot, len(s.bookings)),
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	return c
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &fakeTx{state: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{read: u.snapshot}
}

func (u *fakeUoW) snapshot() *ledgerState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.clone()
}

// Seeding and inspection helpers.

func (u *fakeUoW) seedRoom(room shared.RoomSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.rooms[room.ID] = room
}

func (u *fakeUoW) seedInventory(roomID uuid.UUID, d time.Time, available int32, priceCents int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.inventory[invKey{roomID: roomID, date: d.Format(time.DateOnly)}] = invRecord{
		available: available,
		price:     priceCents,
	}
}

func (u *fakeUoW) seedBooking(snap shared.BookingSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.bookings[snap.ID] = snap
}

func (u *fakeUoW) availableRooms(roomID uuid.UUID, d time.Time) (int32, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	rec, ok := u.state.inventory[invKey{roomID: roomID, date: d.Format(time.DateOnly)}]
	return rec.available, ok
}

func (u *fakeUoW) priceFor(roomID uuid.UUID, d time.Time) (int64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	rec, ok := u.state.inventory[invKey{roomID: roomID, date: d.Format(time.DateOnly)}]
	return rec.price, ok
}

func (u *fakeUoW) booking(id uuid.UUID) (shared.BookingSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	snap, ok := u.state.bookings[id]
	return snap, ok
}

type fakeTx struct {
	state *ledgerState
}

func (t *fakeTx) Bookings() shared.BookingRepository    { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Inventory() shared.InventoryRepository { return &fakeInventoryRepo{state: t.state} }
func (t *fakeTx) Users() shared.UserRepository          { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads {
	return &fakeReads{read: func() *ledgerState { return t.state }}
}
func (t *fakeTx) DB() db.DBTX { return nil }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("no rows in result set"), infra.KindNotFound)
}

type fakeInventoryRepo struct {
	state *ledgerState
}

func (r *fakeInventoryRepo) GetForDate(_ context.Context, roomID uuid.UUID, d time.Time) (*shared.InventoryLevel, error) {
	rec, ok := r.state.inventory[invKey{roomID: roomID, date: d.Format(time.DateOnly)}]
	if !ok {
		return nil, notFoundErr("availability record not found")
	}
	return &shared.InventoryLevel{AvailableRooms: rec.available, EffectivePriceCents: rec.price}, nil
}

func (r *fakeInventoryRepo) Decrement(_ context.Context, roomID uuid.UUID, d time.Time, quantity int32) (int32, error) {
	key := invKey{roomID: roomID, date: d.Format(time.DateOnly)}
	rec, ok := r.state.inventory[key]
	if !ok || rec.available < quantity {
		return 0, infra.WrapRepoErr("insufficient rooms available",
			errs.New("no rows in result set"), infra.KindInsufficientInventory)
	}
	rec.available -= quantity
	r.state.inventory[key] = rec
	return rec.available, nil
}

func (r *fakeInventoryRepo) Increment(_ context.Context, roomID uuid.UUID, d time.Time, quantity int32) (int32, error) {
	key := invKey{roomID: roomID, date: d.Format(time.DateOnly)}
	rec, ok := r.state.inventory[key]
	if !ok {
		return 0, notFoundErr("availability record not found")
	}
	rec.available += quantity
	r.state.inventory[key] = rec
	return rec.available, nil
}

func (r *fakeInventoryRepo) UpsertRange(_ context.Context, roomID uuid.UUID, startDate, endDate time.Time, availableRooms int32, priceOverrideCents *int64) error {
	room, ok := r.state.rooms[roomID]
	if !ok {
		return notFoundErr("room not found")
	}
	price := room.PricePerNightCents
	if priceOverrideCents != nil {
		price = *priceOverrideCents
	}
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		r.state.inventory[invKey{roomID: roomID, date: d.Format(time.DateOnly)}] = invRecord{
			available: availableRooms,
			price:     price,
		}
	}
	return nil
}

type fakeBookingRepo struct {
	state *ledgerState
}

func (r *fakeBookingRepo) Create(_ context.Context, b *dombooking.Booking) (uuid.UUID, error) {
	r.state.bookings[b.ID()] = shared.BookingSnapshot{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomID:          b.RoomID(),
		CheckInDate:     b.Stay().CheckIn(),
		CheckOutDate:    b.Stay().CheckOut(),
		NumGuests:       b.NumGuests(),
		NumRoomsBooked:  b.NumRoomsBooked(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status(),
		PaymentStatus:   b.PaymentStatus(),
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id uuid.UUID) error {
	snap, ok := r.state.bookings[id]
	if !ok {
		return notFoundErr("booking not found")
	}
	if !snap.Status.IsCancellable() {
		return infra.WrapRepoErr("booking is not cancellable",
			errs.New("no rows in result set"), infra.KindStateConflict)
	}
	snap.Status = dombooking.StatusCancelled
	r.state.bookings[id] = snap
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status dombooking.Status) error {
	snap, ok := r.state.bookings[id]
	if !ok {
		return notFoundErr("booking not found")
	}
	snap.Status = status
	r.state.bookings[id] = snap
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(context.Context, uuid.UUID) error { return nil }

type fakeReads struct {
	read func() *ledgerState
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, ok := r.read().rooms[id]
	if !ok {
		return nil, notFoundErr("room not found")
	}
	return &room, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.read().bookings[id]
	if !ok {
		return nil, notFoundErr("booking not found")
	}
	return &snap, nil
}

func (r *fakeReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.BookingByID(ctx, id)
}

// fakeBookingQueries serves the read-after-write lookup in Reserve from the
// committed fake state.
type fakeBookingQueries struct {
	uow *fakeUoW
}

func (q *fakeBookingQueries) GetByID(_ context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	snap, ok := q.uow.booking(id)
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	if !actor.CanActOn(snap.UserID) {
		return nil, queries.ErrBookingAccessDenied
	}
	return viewFromSnapshot(snap), nil
}

func (q *fakeBookingQueries) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	state := q.uow.snapshot()
	var views []*queries.BookingView
	for _, snap := range state.bookings {
		if snap.UserID == userID {
			views = append(views, viewFromSnapshot(snap))
		}
	}
	return views, nil
}

func viewFromSnapshot(snap shared.BookingSnapshot) *queries.BookingView {
	return &queries.BookingView{
		ID:              snap.ID,
		UserID:          snap.UserID,
		RoomID:          snap.RoomID,
		CheckInDate:     snap.CheckInDate,
		CheckOutDate:    snap.CheckOutDate,
		NumGuests:       snap.NumGuests,
		NumRoomsBooked:  snap.NumRoomsBooked,
		TotalPriceCents: snap.TotalPriceCents,
		Status:          snap.Status.String(),
		PaymentStatus:   snap.PaymentStatus.String(),
	}
}
