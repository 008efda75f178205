package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/Domenick1991/travelgo/internal/service/bookings"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) List(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Create(ctx context.Context, ownerID string, input bookings.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Update(ctx context.Context, ownerID, bookingID string, input bookings.UpdateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Delete(ctx context.Context, ownerID, bookingID string) error {
	args := m.Called(ctx, ownerID, bookingID)
	return args.Error(0)
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:           "b-1",
		UserID:       "user-1",
		TravelerName: "Alice",
		PassportNum:  "P1",
		Destination:  "Tokyo, Japan",
		FlightDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		HotelName:    "N/A",
		Status:       domain.BookingStatusConfirmed,
		Price:        100,
	}
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/bookings", nil)
	setIdentity(c, "user-1", "alice")

	mockService.On("List", c.Request.Context(), "user-1").
		Return([]domain.Booking{*sampleBooking()}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tokyo, Japan")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_list_NoIdentity(t *testing.T) {
	handler := NewBookingHandler(&MockBookingUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/bookings", nil)

	handler.list(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/bookings",
		strings.NewReader(`{"traveler_name":"Alice","passport_num":"P1","destination":"Tokyo, Japan","flight_date":"2025-12-01","price":100}`))
	c.Request.Header.Set("Content-Type", "application/json")
	setIdentity(c, "user-1", "alice")

	mockService.On("Create", c.Request.Context(), "user-1", bookings.CreateBookingInput{
		TravelerName: "Alice",
		PassportNum:  "P1",
		Destination:  "Tokyo, Japan",
		FlightDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Price:        100,
	}).Return(sampleBooking(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_DuplicatePassport(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/bookings",
		strings.NewReader(`{"traveler_name":"Alice","passport_num":"P1","destination":"Paris, France","flight_date":"2025-12-02","price":100}`))
	c.Request.Header.Set("Content-Type", "application/json")
	setIdentity(c, "user-1", "alice")

	mockService.On("Create", c.Request.Context(), "user-1", mock.AnythingOfType("bookings.CreateBookingInput")).
		Return(nil, domain.NewDuplicateError("passport number already used"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_BindingErrors(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	testCases := []struct {
		name string
		body string
	}{
		{"missing traveler name", `{"passport_num":"P1","destination":"Tokyo, Japan","flight_date":"2025-12-01"}`},
		{"bad date format", `{"traveler_name":"Alice","passport_num":"P1","destination":"Tokyo, Japan","flight_date":"01/12/2025"}`},
		{"negative price", `{"traveler_name":"Alice","passport_num":"P1","destination":"Tokyo, Japan","flight_date":"2025-12-01","price":-5}`},
		{"bad status", `{"traveler_name":"Alice","passport_num":"P1","destination":"Tokyo, Japan","flight_date":"2025-12-01","status":"Booked"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/bookings", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			setIdentity(c, "user-1", "alice")

			handler.create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_update_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "b-1"}}
	c.Request = httptest.NewRequest("PUT", "/api/bookings/b-1",
		strings.NewReader(`{"status":"Cancelled"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	setIdentity(c, "user-2", "bob")

	mockService.On("Update", c.Request.Context(), "user-2", "b-1", mock.AnythingOfType("bookings.UpdateBookingInput")).
		Return(nil, domain.ErrNotFound)

	handler.update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_update(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "b-1"}}
	c.Request = httptest.NewRequest("PUT", "/api/bookings/b-1",
		strings.NewReader(`{"status":"Cancelled"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	setIdentity(c, "user-1", "alice")

	updated := sampleBooking()
	updated.Status = domain.BookingStatusCancelled
	mockService.On("Update", c.Request.Context(), "user-1", "b-1", bookings.UpdateBookingInput{
		Status: "Cancelled",
	}).Return(updated, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cancelled")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_delete(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "b-1"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/b-1", nil)
	setIdentity(c, "user-1", "alice")

	mockService.On("Delete", c.Request.Context(), "user-1", "b-1").Return(nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
