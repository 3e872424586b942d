package authz

import (
	"strconv"

	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Ownership construit un middleware echo qui court-circuite la requête si
// l'acteur authentifié n'est ni propriétaire du :id visé ni ADMIN.
// Se monte toujours après le middleware d'authentification.
func (g *Gatekeeper) Ownership(res Resource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			actorID, err := utils.GetUserIDFromCtx(ctx)
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, g.logger)
			}
			roles, err := utils.GetUserRolesFromCtx(ctx)
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, g.logger)
			}

			targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				return utils.ErrorResponse(c, apperrors.NewBadRequestError("ID invalide"), g.logger)
			}

			if err := g.CheckOwnership(ctx, actorID, roles, res, targetID); err != nil {
				g.logger.Warn("Ownership: accès refusé",
					zap.Uint64("actorID", actorID),
					zap.String("resource", res.String()),
					zap.Uint64("targetID", targetID),
				)
				return utils.ErrorResponse(c, err, g.logger)
			}

			return next(c)
		}
	}
}

// RequireAdmin réserve la route aux porteurs du rôle ADMIN.
func (g *Gatekeeper) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles, err := utils.GetUserRolesFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, g.logger)
		}
		if !hasAdminRole(roles) {
			return utils.ErrorResponse(c, apperrors.NewForbiddenError("Réservé aux administrateurs"), g.logger)
		}
		return next(c)
	}
}
