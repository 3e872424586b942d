package services

import (
	"context"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/repositories"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/utils"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	userDTO := mapUserDTO(user)
	return &userDTO, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	var hashedPassword *string
	if payload.Password.Valid {
		if !payload.PasswordConfirmation.Valid || payload.Password.String != payload.PasswordConfirmation.String {
			return nil, apperrors.NewConflictError("Les mots de passe ne correspondent pas")
		}
		hashed, err := utils.HashPassword(payload.Password.String)
		if err != nil {
			s.logger.Error("UpdateUser: échec du hachage du mot de passe", zap.Error(err))
			return nil, err
		}
		hashedPassword = &hashed
	}

	user, err := s.userRepo.UpdateUser(ctx, id, payload, hashedPassword)
	if err != nil {
		s.logger.Warn("UpdateUser: échec de la mise à jour du profil",
			zap.Uint64("userID", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("UpdateUser: profil mis à jour", zap.Uint64("userID", id))
	userDTO := mapUserDTO(user)
	return &userDTO, nil
}
