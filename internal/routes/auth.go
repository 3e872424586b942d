package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/authz"
	"lebonmeeple/internal/controllers"
	"lebonmeeple/internal/services"
	"lebonmeeple/pkg/filestorage"
	"lebonmeeple/pkg/service"
)

func runAuthRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	authService services.AuthServiceInterface,
	userService services.UserServiceInterface,
	jwtSvc service.JWTService,
	fileStorage filestorage.FileStorageInterface,
	gatekeeper *authz.Gatekeeper,
	logger *zap.Logger,
) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)
	userCtrl := controllers.NewUserController(userService, fileStorage, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/signin", authCtrl.Signin)
		authGroup.POST("/refresh", authCtrl.RefreshToken)
	}

	secureAuth := secureGroup.Group("/auth")
	{
		secureAuth.GET("/me", authCtrl.Me)
		secureAuth.POST("/logout", authCtrl.Logout)
		secureAuth.GET("/:id", userCtrl.FindUser)
		secureAuth.PATCH("/:id", userCtrl.UpdateUser, gatekeeper.Ownership(authz.ResourceUser))
	}
}
