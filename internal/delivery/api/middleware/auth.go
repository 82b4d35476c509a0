package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
	keyUserID           = "userID"
	keyClaims           = "tokenClaims"
)

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	denylist service.TokenDenylist
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, denylist service.TokenDenylist, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, denylist: denylist, logger: logger}
}

// Authenticate validates the access token and stores the caller id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(headerAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		revoked, err := m.denylist.IsRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return errors.Wrap(err, "check token denylist")
		}
		if revoked {
			return domainerrors.ErrUnauthorized
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyClaims, claims)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", claims.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated caller.
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(keyUserID).(int64)

	return id, ok && id > 0
}

// GetClaims returns the verified token of the request.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok && claims != nil
}
