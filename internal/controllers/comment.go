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

type CommentController struct {
	commentService services.CommentServiceInterface
	logger         *zap.Logger
}

func NewCommentController(commentService services.CommentServiceInterface, logger *zap.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

func (c *CommentController) GetCommentsByPost(ctx echo.Context) error {
	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	comments, err := c.commentService.GetCommentsByPost(ctx.Request().Context(), postID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, comments, "Liste des commentaires", http.StatusOK)
}

func (c *CommentController) CreateComment(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var payload dto.CreateCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateComment: échec de la liaison des données", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewBadRequestError("Format de données invalide"), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateComment: échec de la validation", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	comment, err := c.commentService.CreateComment(ctx.Request().Context(), userID, postID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, comment, "Commentaire créé", http.StatusCreated)
}

func (c *CommentController) UpdateComment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var payload dto.UpdateCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateComment: échec de la liaison des données", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewBadRequestError("Format de données invalide"), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("UpdateComment: échec de la validation", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	comment, err := c.commentService.UpdateComment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, comment, "Commentaire mis à jour", http.StatusOK)
}

func (c *CommentController) DeleteComment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID invalide", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	comment, err := c.commentService.DeleteComment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, comment, "Commentaire supprimé", http.StatusOK)
}
