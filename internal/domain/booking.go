package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// DefaultHotelName marks bookings without a hotel stay.
const DefaultHotelName = "N/A"

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	TravelerName string        `json:"traveler_name"`
	PassportNum  string        `json:"passport_num"`
	Destination  string        `json:"destination"`
	FlightDate   time.Time     `json:"flight_date"`
	HotelName    string        `json:"hotel_name"`
	Status       BookingStatus `json:"status"`
	Price        float64       `json:"price"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
