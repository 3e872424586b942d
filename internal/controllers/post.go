package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/services"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
	logger      *zap.Logger
}

func NewPostController(postService services.PostServiceInterface, logger *zap.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

func (c *PostController) GetPosts(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	list, err := c.postService.GetPosts(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Liste des billets", http.StatusOK)
}

func (c *PostController) FindPost(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	post, err := c.postService.FindPost(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, post, "Billet trouvé", http.StatusOK)
}

func (c *PostController) CreatePost(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreatePostDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreatePost: échec de la liaison des données", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewBadRequestError("Format de données invalide"), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreatePost: échec de la validation", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	post, err := c.postService.CreatePost(ctx.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, post, "Billet créé", http.StatusCreated)
}

func (c *PostController) UpdatePost(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var payload dto.UpdatePostDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdatePost: échec de la liaison des données", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewBadRequestError("Format de données invalide"), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("UpdatePost: échec de la validation", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	post, err := c.postService.UpdatePost(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, post, "Billet mis à jour", http.StatusOK)
}

func (c *PostController) DeletePost(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	post, err := c.postService.DeletePost(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, post, "Billet supprimé", http.StatusOK)
}
