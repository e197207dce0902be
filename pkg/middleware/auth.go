package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"support-it/internal/services"
	"support-it/pkg/contextkeys"
	apperrors "support-it/pkg/errors"
	"support-it/pkg/service"
	"support-it/pkg/utils"
)

type AuthMiddleware struct {
	jwtService     service.JWTService
	profileService services.ProfileServiceInterface
	logger         *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, profileService services.ProfileServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:     jwtSvc,
		profileService: profileService,
		logger:         logger,
	}
}

// Auth vérifie le jeton Bearer, résout le profil de l'appelant (via le cache)
// et le dépose dans le contexte de la requête. Les services reçoivent ensuite
// ce profil en paramètre explicite : aucun état global de session.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("jeton invalide", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		profile, err := m.profileService.GetProfileByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// jeton valide mais profil disparu
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.ProfileKey, profile)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
