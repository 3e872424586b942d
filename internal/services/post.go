package services

import (
	"context"
	"errors"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/repositories"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/types"
	"lebonmeeple/pkg/utils"

	"go.uber.org/zap"
)

type PostServiceInterface interface {
	GetPosts(ctx context.Context, filter types.Filter) (*dto.PostListDTO, error)
	FindPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, userID uint64, payload dto.CreatePostDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id uint64, payload dto.UpdatePostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id uint64) (*dto.PostDTO, error)
}

type PostService struct {
	postRepo    repositories.PostRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	commentRepo repositories.CommentRepositoryInterface
	gameRepo    repositories.GameRepositoryInterface
	logger      *zap.Logger
}

func NewPostService(
	postRepo repositories.PostRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	commentRepo repositories.CommentRepositoryInterface,
	gameRepo repositories.GameRepositoryInterface,
	logger *zap.Logger,
) PostServiceInterface {
	return &PostService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		gameRepo:    gameRepo,
		logger:      logger,
	}
}

func (s *PostService) GetPosts(ctx context.Context, filter types.Filter) (*dto.PostListDTO, error) {
	posts, total, err := s.postRepo.GetPosts(ctx, filter)
	if err != nil {
		s.logger.Error("GetPosts: échec de la lecture de la liste", zap.Error(err))
		return nil, err
	}

	list := make([]dto.PostDTO, 0, len(posts))
	for i := range posts {
		list = append(list, mapPostDTO(&posts[i]))
	}

	return &dto.PostListDTO{
		Posts:      list,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: utils.TotalPages(total, filter.Limit),
	}, nil
}

func (s *PostService) FindPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.FindPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetCommentsByPost(ctx, id)
	if err != nil {
		s.logger.Error("FindPost: échec du chargement des commentaires",
			zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	post.Comments = comments

	games, err := s.gameRepo.GetGamesByPost(ctx, id)
	if err != nil {
		s.logger.Error("FindPost: échec du chargement des jeux associés",
			zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	post.Games = games

	postDTO := mapPostDTO(post)
	return &postDTO, nil
}

func (s *PostService) CreatePost(ctx context.Context, userID uint64, payload dto.CreatePostDTO) (*dto.PostDTO, error) {
	// relecture défensive: le compte a pu disparaître entre l'émission du
	// jeton et l'écriture
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Utilisateur introuvable")
		}
		return nil, err
	}

	post, err := s.postRepo.CreatePost(ctx, userID, payload)
	if err != nil {
		s.logger.Error("CreatePost: échec de la création du billet",
			zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("CreatePost: billet créé", zap.Uint64("postID", post.ID), zap.Uint64("userID", userID))
	postDTO := mapPostDTO(post)
	return &postDTO, nil
}

// UpdatePost et DeletePost supposent la propriété déjà vérifiée par le
// middleware d'autorisation: l'écriture est inconditionnelle.
func (s *PostService) UpdatePost(ctx context.Context, id uint64, payload dto.UpdatePostDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.UpdatePost(ctx, id, payload)
	if err != nil {
		s.logger.Warn("UpdatePost: échec de la mise à jour", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	postDTO := mapPostDTO(post)
	return &postDTO, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		s.logger.Warn("DeletePost: échec de la suppression", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("DeletePost: billet supprimé", zap.Uint64("postID", id))
	postDTO := mapPostDTO(post)
	return &postDTO, nil
}
