package bookings

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/Domenick1991/travelgo/internal/kafka"
	"github.com/Domenick1991/travelgo/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	List(ctx context.Context, ownerID string) ([]domain.Booking, error)
	Create(ctx context.Context, ownerID string, input CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, ownerID, bookingID string, input UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, ownerID, bookingID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	TravelerName string    `json:"traveler_name"`
	PassportNum  string    `json:"passport_num"`
	Destination  string    `json:"destination"`
	FlightDate   time.Time `json:"flight_date"`
	HotelName    string    `json:"hotel_name"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
}

type UpdateBookingInput struct {
	TravelerName string     `json:"traveler_name"`
	PassportNum  string     `json:"passport_num"`
	Destination  string     `json:"destination"`
	FlightDate   *time.Time `json:"flight_date"`
	HotelName    string     `json:"hotel_name"`
	Status       string     `json:"status"`
	Price        *float64   `json:"price"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// List returns only the caller's bookings; rows of other owners never leave the store.
func (s *BookingService) List(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, ownerID)
}

func (s *BookingService) Create(ctx context.Context, ownerID string, input CreateBookingInput) (*domain.Booking, error) {
	if input.TravelerName == "" {
		return nil, domain.NewValidationError("traveler name is required")
	}
	if input.PassportNum == "" {
		return nil, domain.NewValidationError("passport number is required")
	}
	if input.Destination == "" {
		return nil, domain.NewValidationError("destination is required")
	}
	if input.FlightDate.IsZero() {
		return nil, domain.NewValidationError("flight date is required")
	}
	if input.Price < 0 {
		return nil, domain.NewValidationError("price must not be negative")
	}

	status := domain.BookingStatusConfirmed
	if input.Status != "" {
		status = domain.BookingStatus(input.Status)
		if !status.Valid() {
			return nil, domain.NewValidationError("unknown status")
		}
	}
	hotelName := input.HotelName
	if hotelName == "" {
		hotelName = domain.DefaultHotelName
	}

	booking := &domain.Booking{
		ID:           uuid.NewString(),
		UserID:       ownerID,
		TravelerName: input.TravelerName,
		PassportNum:  input.PassportNum,
		Destination:  input.Destination,
		FlightDate:   input.FlightDate,
		HotelName:    hotelName,
		Status:       status,
		Price:        input.Price,
	}

	// The (user_id, passport_num) unique index settles concurrent creates:
	// exactly one insert wins, the loser comes back as ErrDuplicate.
	if err := s.bookings.Create(ctx, booking); err != nil {
		if domain.IsDuplicate(err) {
			return nil, domain.NewDuplicateError("passport number already used by another of your bookings")
		}
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, ownerID, bookingID string, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.ownedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	if input.TravelerName != "" {
		booking.TravelerName = input.TravelerName
	}
	if input.PassportNum != "" {
		booking.PassportNum = input.PassportNum
	}
	if input.Destination != "" {
		booking.Destination = input.Destination
	}
	if input.FlightDate != nil {
		booking.FlightDate = *input.FlightDate
	}
	if input.HotelName != "" {
		booking.HotelName = input.HotelName
	}
	if input.Status != "" {
		status := domain.BookingStatus(input.Status)
		if !status.Valid() {
			return nil, domain.NewValidationError("unknown status")
		}
		booking.Status = status
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domain.NewValidationError("price must not be negative")
		}
		booking.Price = *input.Price
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		if domain.IsDuplicate(err) {
			return nil, domain.NewDuplicateError("passport number already used by another of your bookings")
		}
		return nil, err
	}

	s.publish(ctx, "booking_updated", booking)
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, ownerID, bookingID string) error {
	booking, err := s.ownedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, ownerID, bookingID); err != nil {
		return err
	}

	s.publish(ctx, "booking_deleted", booking)
	return nil
}

// ownedBooking is the single ownership predicate applied before every mutate.
// A booking that exists but belongs to someone else surfaces as ErrNotFound,
// so callers cannot learn about other users' bookings.
func (s *BookingService) ownedBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	return s.bookings.GetOwned(ctx, ownerID, bookingID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		TravelerName: booking.TravelerName,
		Destination:  booking.Destination,
		FlightDate:   booking.FlightDate,
		Status:       string(booking.Status),
		Price:        booking.Price,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
