package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clinicdesk/internal/errors"
	"clinicdesk/internal/service"
)

// AppointmentHandler handles appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// BookAppointmentRequest represents a booking request.
type BookAppointmentRequest struct {
	DoctorID    string `json:"doctorId" validate:"required" example:"6f1c2f9e-8d4b-4c57-9a43-0f6f0f3b2a11"`
	PatientName string `json:"patientName" validate:"required" example:"Alice"`
	Date        string `json:"date" validate:"required" example:"2024-06-01"`
	Time        string `json:"time" validate:"required" example:"14:30"`
	Reason      string `json:"reason" example:"checkup"`
}

// UpdateAppointmentRequest represents a partial update. Omitted or null
// fields are left unchanged.
type UpdateAppointmentRequest struct {
	Date   *string `json:"date,omitempty" example:"2024-06-02"`
	Time   *string `json:"time,omitempty" example:"09:15"`
	Status *string `json:"status,omitempty" example:"completed"`
	Reason *string `json:"reason,omitempty" example:"follow-up"`
}

// Book godoc
// @Summary Book an appointment
// @Description Combines date and time into a single timestamp. Overlapping bookings are allowed.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body BookAppointmentRequest true "Booking data"
// @Success 201 {object} AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req BookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.MapErrorToHTTP(apperrors.ErrMissingFields)
	}

	appointment, err := h.appointmentService.Book(c.Request().Context(), service.BookInput{
		DoctorID:    req.DoctorID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
	})
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, AppointmentResponse{Status: StatusOK, Appointment: appointment})
}

// List godoc
// @Summary List all appointments
// @Tags appointments
// @Produce json
// @Success 200 {object} AppointmentsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.appointmentService.List(c.Request().Context())
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, AppointmentsResponse{Status: StatusOK, Appointments: appointments})
}

// Today godoc
// @Summary List today's appointments
// @Description Appointments between local midnight and the end of the current day.
// @Tags appointments
// @Produce json
// @Success 200 {object} AppointmentsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments/today [get]
func (h *AppointmentHandler) Today(c echo.Context) error {
	appointments, err := h.appointmentService.ListToday(c.Request().Context())
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, AppointmentsResponse{Status: StatusOK, Appointments: appointments})
}

// Upcoming godoc
// @Summary List the next ten appointments
// @Tags appointments
// @Produce json
// @Success 200 {object} AppointmentsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments/upcoming [get]
func (h *AppointmentHandler) Upcoming(c echo.Context) error {
	appointments, err := h.appointmentService.ListUpcoming(c.Request().Context())
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, AppointmentsResponse{Status: StatusOK, Appointments: appointments})
}

// Update godoc
// @Summary Update an appointment
// @Description The time is recomputed only when both date and time are sent.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body UpdateAppointmentRequest true "Fields to change"
// @Success 200 {object} AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	var req UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appointment, err := h.appointmentService.Update(c.Request().Context(), id, service.UpdateInput{
		Date:   req.Date,
		Time:   req.Time,
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, AppointmentResponse{Status: StatusOK, Appointment: appointment})
}

// Cancel godoc
// @Summary Cancel an appointment
// @Description Deletes the appointment permanently.
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	if err := h.appointmentService.Cancel(c.Request().Context(), id); err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Status: StatusOK, Message: "appointment cancelled"})
}

// appointmentID parses the :id path value. A malformed id cannot name an
// appointment, so it reads as not found.
func appointmentID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrAppointmentNotFound
	}
	return id, nil
}
