package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/authz"
	"lebonmeeple/internal/controllers"
	"lebonmeeple/internal/services"
)

func runCommentRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	commentService services.CommentServiceInterface,
	gatekeeper *authz.Gatekeeper,
	logger *zap.Logger,
) {
	commentCtrl := controllers.NewCommentController(commentService, logger)

	api.GET("/post/:id/comments", commentCtrl.GetCommentsByPost)

	secureGroup.POST("/post/:id/comment", commentCtrl.CreateComment)
	secureGroup.PATCH("/comment/:id", commentCtrl.UpdateComment, gatekeeper.Ownership(authz.ResourceComment))
	secureGroup.DELETE("/comment/:id", commentCtrl.DeleteComment, gatekeeper.Ownership(authz.ResourceComment))
}
