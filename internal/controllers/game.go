package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/services"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/utils"
)

type GameController struct {
	gameService services.GameServiceInterface
	logger      *zap.Logger
}

func NewGameController(gameService services.GameServiceInterface, logger *zap.Logger) *GameController {
	return &GameController{
		gameService: gameService,
		logger:      logger,
	}
}

func (c *GameController) GetGames(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	list, err := c.gameService.GetGames(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Liste des jeux", http.StatusOK)
}

func (c *GameController) FindGame(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	game, err := c.gameService.FindGame(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, game, "Jeu trouvé", http.StatusOK)
}
