package user

type Role string

const (
	RoleGuest        Role = "guest"
	RoleHotelManager Role = "hotel_manager"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHotelManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageBookings reports whether the role may act on bookings it does not own.
func (r Role) CanManageBookings() bool {
	return r == RoleAdmin || r == RoleHotelManager
}
