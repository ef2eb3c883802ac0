package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"clinicdesk/internal/auth"
	apperrors "clinicdesk/internal/errors"
)

// ClaimsContextKey is where RequireToken stores the validated *auth.Claims.
const ClaimsContextKey = "claims"

// RequireToken rejects requests without a valid, unrevoked bearer token.
func RequireToken(jwtService *auth.JWTService, store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(raw)
			if err != nil {
				return nil, err
			}
			if store.IsRevoked(c.Request().Context(), claims.ID) {
				return nil, apperrors.ErrInvalidToken
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
		},
	})
}

// ClaimsFrom returns the claims stored by RequireToken, if any.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
