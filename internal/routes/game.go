package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/controllers"
	"lebonmeeple/internal/services"
)

func runGameRouter(api *echo.Group, gameService services.GameServiceInterface, logger *zap.Logger) {
	gameCtrl := controllers.NewGameController(gameService, logger)

	api.GET("/games", gameCtrl.GetGames)
	api.GET("/game/:id", gameCtrl.FindGame)
}
