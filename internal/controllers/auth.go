package controllers

import (
	"net/http"
	"time"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
	"lebonmeeple/internal/services"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/service"
	"lebonmeeple/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Signup: échec de la liaison des données", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Format de données d'inscription invalide"))
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("Signup: échec de la validation", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Signup(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, user, "Compte créé avec succès", http.StatusCreated)
}

func (ctrl *AuthController) Signin(c echo.Context) error {
	var payload dto.SigninDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Signin: échec de la liaison des données", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Format de données de connexion invalide"))
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("Signin: échec de la validation", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Signin(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Signin: échec de l'authentification", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	return ctrl.respondWithTokens(c, user, "Connexion réussie")
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, user, "Profil récupéré", http.StatusOK)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie("refreshToken")
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.ErrTokenIsNotRefresh)
	}

	// relecture du profil: les rôles ont pu changer depuis l'émission
	user, err := ctrl.authService.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return ctrl.respondWithTokens(c, user, "Jeton renouvelé")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	cookie := &http.Cookie{
		Name:     "refreshToken",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	c.SetCookie(cookie)

	return utils.SuccessResponse(c, nil, "Vous êtes déconnecté.", http.StatusOK)
}

func (ctrl *AuthController) respondWithTokens(c echo.Context, user *entities.User, message string) error {
	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(user.ID, user.Username, user.Email, user.Roles)
	if err != nil {
		ctrl.logger.Error("Échec de la génération des jetons", zap.Uint64("userID", user.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(ctrl.jwtSvc.GetRefreshTokenTTL()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	body := dto.AuthResponseDTO{
		Token: accessToken,
		User: dto.UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Avatar:   user.Avatar,
			Roles:    user.Roles,
		},
	}

	return utils.SuccessResponse(c, body, message, http.StatusOK)
}
