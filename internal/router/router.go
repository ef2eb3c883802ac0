package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clinicdesk/internal/auth"
	"clinicdesk/internal/config"
	"clinicdesk/internal/handler"
	"clinicdesk/internal/middleware"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth        *handler.AuthHandler
	Patient     *handler.PatientHandler
	Appointment *handler.AppointmentHandler
	Health      *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	metrics *middleware.Metrics,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(echomw.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.Logger(log))
	e.Use(middleware.Recovery(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.GET("/healthz", h.Health.Health)
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/login", h.Auth.Login)
	e.POST("/logout", h.Auth.Logout)

	// Clinic data is open unless AUTH_REQUIRED is set
	var guards []echo.MiddlewareFunc
	if cfg.AuthRequired {
		guards = append(guards, middleware.RequireToken(jwtService, tokenStore))
	}

	e.GET("/patients", h.Patient.ListPatients, guards...)
	e.GET("/api/patients/recent", h.Patient.ListRecentPatients, guards...)

	e.POST("/appointments", h.Appointment.Book, guards...)
	e.GET("/appointments", h.Appointment.List, guards...)
	e.GET("/appointments/today", h.Appointment.Today, guards...)
	e.GET("/appointments/upcoming", h.Appointment.Upcoming, guards...)
	e.PUT("/appointments/:id", h.Appointment.Update, guards...)
	e.DELETE("/appointments/:id", h.Appointment.Cancel, guards...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
