package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/Domenick1991/travelgo/internal/service/bookings"
	"github.com/gin-gonic/gin"
)

const flightDateFormat = "2006-01-02"

type BookingHandler struct {
	service bookings.BookingUseCase
}

type createBookingRequest struct {
	TravelerName string  `json:"traveler_name" binding:"required"`
	PassportNum  string  `json:"passport_num" binding:"required"`
	Destination  string  `json:"destination" binding:"required"`
	FlightDate   string  `json:"flight_date" binding:"required,datetime=2006-01-02"`
	HotelName    string  `json:"hotel_name"`
	Status       string  `json:"status" binding:"omitempty,oneof=Confirmed Pending Cancelled"`
	Price        float64 `json:"price" binding:"min=0"`
}

type updateBookingRequest struct {
	TravelerName string   `json:"traveler_name"`
	PassportNum  string   `json:"passport_num"`
	Destination  string   `json:"destination"`
	FlightDate   string   `json:"flight_date" binding:"omitempty,datetime=2006-01-02"`
	HotelName    string   `json:"hotel_name"`
	Status       string   `json:"status" binding:"omitempty,oneof=Confirmed Pending Cancelled"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
}

type bookingResponse struct {
	ID           string  `json:"id"`
	TravelerName string  `json:"traveler_name"`
	PassportNum  string  `json:"passport_num"`
	Destination  string  `json:"destination"`
	FlightDate   string  `json:"flight_date"`
	HotelName    string  `json:"hotel_name"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	list, err := h.service.List(c.Request.Context(), claims.Subject)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) create(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	flightDate, err := time.Parse(flightDateFormat, req.FlightDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid flight date"})
		return
	}

	booking, err := h.service.Create(c.Request.Context(), claims.Subject, bookings.CreateBookingInput{
		TravelerName: req.TravelerName,
		PassportNum:  req.PassportNum,
		Destination:  req.Destination,
		FlightDate:   flightDate,
		HotelName:    req.HotelName,
		Status:       req.Status,
		Price:        req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) update(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input := bookings.UpdateBookingInput{
		TravelerName: req.TravelerName,
		PassportNum:  req.PassportNum,
		Destination:  req.Destination,
		HotelName:    req.HotelName,
		Status:       req.Status,
		Price:        req.Price,
	}
	if req.FlightDate != "" {
		flightDate, err := time.Parse(flightDateFormat, req.FlightDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid flight date"})
			return
		}
		input.FlightDate = &flightDate
	}

	booking, err := h.service.Update(c.Request.Context(), claims.Subject, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) delete(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), claims.Subject, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted successfully"})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		TravelerName: b.TravelerName,
		PassportNum:  b.PassportNum,
		Destination:  b.Destination,
		FlightDate:   b.FlightDate.Format(flightDateFormat),
		HotelName:    b.HotelName,
		Status:       string(b.Status),
		Price:        b.Price,
	}
}
