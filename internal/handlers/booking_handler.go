package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/httpresp"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	ucBooking "github.com/HennaArtStudio/henna-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (customer-facing)
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectedServiceRequest struct {
	Name       string `json:"name" binding:"required"`
	Complexity string `json:"complexity" binding:"required"`
}

type CreateBookingRequest struct {
	Services []SelectedServiceRequest `json:"services" binding:"required"`
	Date     string                   `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string                   `json:"time" binding:"required"` // HH:mm

	PersonalDetails struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone" binding:"required"`
		Email string `json:"email"`
	} `json:"personal_details" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	userEmail := c.MustGet(middleware.ContextUserEmail).(string)
	verified := c.MustGet(middleware.ContextUserVerified).(bool)
	provider := c.MustGet(middleware.ContextUserProvider).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	services := make([]ucBooking.SelectedService, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, ucBooking.SelectedService{
			Name:       s.Name,
			Complexity: s.Complexity,
		})
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:        userID,
		UserEmail:     userEmail,
		EmailVerified: verified,
		Provider:      provider,
		Services:      services,
		Date:          req.Date,
		Time:          req.Time,
		PersonalName:  req.PersonalDetails.Name,
		PersonalPhone: req.PersonalDetails.Phone,
		PersonalEmail: req.PersonalDetails.Email,
	})

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// mapCreateBookingError translates business codes into responses. An
// unverified email is not a plain rejection; the client routes the user
// into the verification flow.
func mapCreateBookingError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "email_not_verified":
		httperr.Forbidden(c, code, "Please verify your email before booking.")
	case "no_services_selected",
		"missing_personal_details",
		"email_unknown",
		"invalid_date_or_time",
		"invalid_complexity",
		"service_not_found":
		httperr.BadRequest(c, code, "Invalid booking data.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
	}
}

// ======================================================
// MY BOOKINGS
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUC.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}
