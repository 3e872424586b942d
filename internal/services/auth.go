// Fichier: internal/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
	"lebonmeeple/internal/repositories"
	"lebonmeeple/pkg/config"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*dto.UserDTO, error)
	Signin(ctx context.Context, payload dto.SigninDTO) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.UserDTO, error) {
	// la confirmation se vérifie avant tout accès au stockage
	if payload.Password != payload.PasswordConfirmation {
		return nil, apperrors.NewConflictError("Les mots de passe ne correspondent pas")
	}

	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Signup: échec du hachage du mot de passe", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, payload, hashedPassword)
	if err != nil {
		s.logger.Warn("Signup: échec de la création du compte",
			zap.String("email", payload.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Signup: compte créé", zap.Uint64("userID", user.ID), zap.String("username", user.Username))
	userDTO := mapUserDTO(user)
	return &userDTO, nil
}

// Signin valide les identifiants. Les deux échecs portent des messages
// distincts à destination de l'utilisateur: e-mail inconnu vs mauvais mot de passe.
func (s *AuthService) Signin(ctx context.Context, payload dto.SigninDTO) (*entities.User, error) {
	lockoutKey := fmt.Sprintf("login_attempts:%s", payload.Email)

	if s.cacheRepo != nil {
		attemptsStr, _ := s.cacheRepo.Get(ctx, lockoutKey)
		if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
			s.logger.Warn("Signin: compte temporairement verrouillé", zap.String("email", payload.Email))
			return nil, apperrors.NewHttpError(
				http.StatusTooManyRequests,
				fmt.Sprintf("Trop de tentatives. Réessayez dans %.0f minutes.", s.cfg.LockoutDuration.Minutes()),
				nil,
				nil,
			)
		}
	}

	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Aucun compte n'est associé à cette adresse e-mail")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(payload.Password, user.Password) {
		s.registerFailedAttempt(ctx, lockoutKey)
		s.logger.Warn("Signin: mot de passe incorrect", zap.Uint64("userID", user.ID))
		return nil, apperrors.NewUnauthorizedError("Mot de passe incorrect")
	}

	if s.cacheRepo != nil {
		_ = s.cacheRepo.Del(ctx, lockoutKey)
	}

	s.logger.Info("Signin: authentification réussie", zap.Uint64("userID", user.ID))
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	if s.cacheRepo == nil {
		return
	}
	if _, err := s.cacheRepo.Incr(ctx, key); err != nil {
		s.logger.Warn("Signin: impossible d'incrémenter le compteur de tentatives", zap.Error(err))
		return
	}
	_, _ = s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration)
}
