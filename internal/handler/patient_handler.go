package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "clinicdesk/internal/errors"
	"clinicdesk/internal/service"
)

// PatientHandler serves patient listings.
type PatientHandler struct {
	svc service.PatientService
}

// NewPatientHandler creates a patient handler.
func NewPatientHandler(svc service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ListPatients godoc
// @Summary List all patients
// @Description Each patient carries its doctor (without password) when the reference resolves.
// @Tags patients
// @Produce json
// @Success 200 {object} PatientsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, PatientsResponse{Status: StatusOK, Patients: patients})
}

// ListRecentPatients godoc
// @Summary List the five most recently seen patients
// @Tags patients
// @Produce json
// @Success 200 {object} PatientsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/patients/recent [get]
func (h *PatientHandler) ListRecentPatients(c echo.Context) error {
	patients, err := h.svc.ListRecentPatients(c.Request().Context())
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, PatientsResponse{Status: StatusOK, Patients: patients})
}
