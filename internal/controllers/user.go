package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/services"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/filestorage"
	"lebonmeeple/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUserController(
	userService services.UserServiceInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *UserController {
	return &UserController{
		userService: userService,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (c *UserController) FindUser(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	user, err := c.userService.FindUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, user, "Utilisateur trouvé", http.StatusOK)
}

// UpdateUser accepte du JSON simple, ou du multipart avec un champ `data`
// et un fichier `avatar`.
func (c *UserController) UpdateUser(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var payload dto.UpdateUserDTO

	avatarFile, avatarErr := ctx.FormFile("avatar")
	if avatarErr == nil {
		if dataString := ctx.FormValue("data"); dataString != "" {
			if err := json.Unmarshal([]byte(dataString), &payload); err != nil {
				c.logger.Error("UpdateUser: JSON invalide dans 'data'", zap.Error(err))
				return utils.ErrorResponse(ctx,
					apperrors.NewBadRequestError("JSON invalide dans le champ 'data'"), c.logger)
			}
		}

		avatarPath, err := c.fileStorage.Save(avatarFile, "avatars")
		if err != nil {
			c.logger.Error("UpdateUser: échec de l'enregistrement de l'avatar", zap.Error(err))
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusInternalServerError,
					"Échec de l'enregistrement de l'avatar", err, nil),
				c.logger,
			)
		}
		payload.Avatar = null.StringFrom("/uploads/" + avatarPath)
	} else {
		if err := ctx.Bind(&payload); err != nil {
			c.logger.Error("UpdateUser: échec de la liaison des données", zap.Error(err))
			return utils.ErrorResponse(ctx,
				apperrors.NewBadRequestError("Format de données invalide"), c.logger)
		}
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("UpdateUser: échec de la validation", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.userService.UpdateUser(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, user, "Profil mis à jour", http.StatusOK)
}
