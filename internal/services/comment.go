package services

import (
	"context"
	"errors"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/repositories"
	apperrors "lebonmeeple/pkg/errors"

	"go.uber.org/zap"
)

type CommentServiceInterface interface {
	GetCommentsByPost(ctx context.Context, postID uint64) ([]dto.CommentDTO, error)
	CreateComment(ctx context.Context, userID, postID uint64, payload dto.CreateCommentDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, id uint64, payload dto.UpdateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, id uint64) (*dto.CommentDTO, error)
}

type CommentService struct {
	commentRepo repositories.CommentRepositoryInterface
	postRepo    repositories.PostRepositoryInterface
	logger      *zap.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepositoryInterface,
	postRepo repositories.PostRepositoryInterface,
	logger *zap.Logger,
) CommentServiceInterface {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (s *CommentService) GetCommentsByPost(ctx context.Context, postID uint64) ([]dto.CommentDTO, error) {
	if _, err := s.postRepo.FindPost(ctx, postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Billet introuvable")
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetCommentsByPost(ctx, postID)
	if err != nil {
		s.logger.Error("GetCommentsByPost: échec de la lecture",
			zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}

	list := make([]dto.CommentDTO, 0, len(comments))
	for i := range comments {
		list = append(list, mapCommentDTO(&comments[i]))
	}
	return list, nil
}

func (s *CommentService) CreateComment(ctx context.Context, userID, postID uint64, payload dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	// un commentaire ne s'accroche qu'à un billet existant
	if _, err := s.postRepo.FindPost(ctx, postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Billet introuvable")
		}
		return nil, err
	}

	comment, err := s.commentRepo.CreateComment(ctx, userID, postID, payload)
	if err != nil {
		s.logger.Error("CreateComment: échec de la création",
			zap.Uint64("postID", postID), zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("CreateComment: commentaire créé",
		zap.Uint64("commentID", comment.ID), zap.Uint64("postID", postID))
	commentDTO := mapCommentDTO(comment)
	return &commentDTO, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint64, payload dto.UpdateCommentDTO) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.UpdateComment(ctx, id, payload)
	if err != nil {
		s.logger.Warn("UpdateComment: échec de la mise à jour", zap.Uint64("commentID", id), zap.Error(err))
		return nil, err
	}
	commentDTO := mapCommentDTO(comment)
	return &commentDTO, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint64) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.DeleteComment(ctx, id)
	if err != nil {
		s.logger.Warn("DeleteComment: échec de la suppression", zap.Uint64("commentID", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("DeleteComment: commentaire supprimé", zap.Uint64("commentID", id))
	commentDTO := mapCommentDTO(comment)
	return &commentDTO, nil
}
