package middleware

import (
	"context"
	"strings"

	"lebonmeeple/pkg/contextkeys"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/service"
	"lebonmeeple/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth vérifie le jeton Bearer et dépose id + rôles dans le contexte de la requête.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: en-tête Authorization vide")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: format d'en-tête Authorization invalide")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: échec de validation du jeton", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// un refresh token ne donne pas accès à l'API
		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: tentative d'accès avec un refresh token")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRolesKey, claims.Roles)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
