package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "clinicdesk/internal/errors"
	"clinicdesk/internal/model"
)

// StatusOK is the status field of every successful envelope.
const StatusOK = "ok"

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Status string        `json:"status" example:"ok"`
	Token  string        `json:"token"`
	Doctor *model.Doctor `json:"doctor"`
}

// PatientsResponse wraps a patient listing.
type PatientsResponse struct {
	Status   string          `json:"status" example:"ok"`
	Patients []model.Patient `json:"patients"`
}

// AppointmentResponse wraps a single appointment.
type AppointmentResponse struct {
	Status      string             `json:"status" example:"ok"`
	Appointment *model.Appointment `json:"appointment"`
}

// AppointmentsResponse wraps an appointment listing.
type AppointmentsResponse struct {
	Status       string              `json:"status" example:"ok"`
	Appointments []model.Appointment `json:"appointments"`
}

// MessageResponse is a success envelope carrying only a message.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message"`
}

// ErrorHandler renders every error as {message}. 5xx causes are logged with
// the failing route as tag and never sent to the client.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *apperrors.HTTPError
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && !errors.As(err, &httpErr) {
			msg := http.StatusText(echoErr.Code)
			if m, ok := echoErr.Message.(string); ok {
				msg = m
			}
			httpErr = apperrors.NewHTTPError(echoErr.Code, msg)
			if echoErr.Code >= http.StatusInternalServerError {
				httpErr.Internal = err
			}
		} else {
			httpErr = apperrors.MapErrorToHTTP(err)
		}

		if httpErr.StatusCode >= http.StatusInternalServerError {
			cause := httpErr.Internal
			if cause == nil {
				cause = err
			}
			log.Error().
				Err(cause).
				Str("tag", fmt.Sprintf("%s %s", c.Request().Method, c.Path())).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(httpErr.StatusCode)
		} else {
			writeErr = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("write error response")
		}
	}
}
