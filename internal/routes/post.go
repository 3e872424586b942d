package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/authz"
	"lebonmeeple/internal/controllers"
	"lebonmeeple/internal/services"
)

func runPostRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	postService services.PostServiceInterface,
	gatekeeper *authz.Gatekeeper,
	logger *zap.Logger,
) {
	postCtrl := controllers.NewPostController(postService, logger)

	api.GET("/posts", postCtrl.GetPosts)
	api.GET("/post/:id", postCtrl.FindPost)

	secureGroup.POST("/post", postCtrl.CreatePost)
	secureGroup.PATCH("/post/:id", postCtrl.UpdatePost, gatekeeper.Ownership(authz.ResourcePost))
	secureGroup.DELETE("/post/:id", postCtrl.DeletePost, gatekeeper.Ownership(authz.ResourcePost))
}
