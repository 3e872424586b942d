package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lebonmeeple/internal/dto"
	"lebonmeeple/pkg/config"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/utils"
)

func newAuthServiceForTest(userRepo *fakeUserRepo, cache *fakeCache) AuthServiceInterface {
	cfg := &config.AuthConfig{MaxLoginAttempts: 5, LockoutDuration: 0}
	return NewAuthService(userRepo, cache, zap.NewNop(), cfg)
}

func TestSignupHashesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, newFakeCache())

	payload := dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "pouetpouet",
	}

	user, err := svc.Signup(context.Background(), payload)
	require.NoError(t, err)
	require.NotNil(t, user)

	stored := userRepo.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pouetpouet", stored.Password, "le mot de passe ne doit jamais être stocké en clair")
	assert.True(t, utils.CheckPasswordHash("pouetpouet", stored.Password))
}

func TestSignupPasswordMismatchIsRejectedBeforeStorage(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, newFakeCache())

	payload := dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "autrechose",
	}

	_, err := svc.Signup(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.Equal(t, 0, userRepo.createCalls, "le stockage ne doit pas être touché quand la confirmation diverge")
}

func TestSignupDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, newFakeCache())

	payload := dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "pouetpouet",
	}

	_, err := svc.Signup(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestSigninSuccess(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, newFakeCache())

	_, err := svc.Signup(context.Background(), dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "pouetpouet",
	})
	require.NoError(t, err)

	user, err := svc.Signin(context.Background(), dto.SigninDTO{
		Email:    "testuser@gmail.com",
		Password: "pouetpouet",
	})
	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "testuser@gmail.com", user.Email)
	assert.Contains(t, user.Roles, "USER")
}

func TestSigninUnknownEmail(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo(), newFakeCache())

	_, err := svc.Signin(context.Background(), dto.SigninDTO{
		Email:    "inconnu@gmail.com",
		Password: "pouetpouet",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	assert.Equal(t, "Aucun compte n'est associé à cette adresse e-mail", httpErr.Message)
}

func TestSigninWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, newFakeCache())

	_, err := svc.Signup(context.Background(), dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "pouetpouet",
	})
	require.NoError(t, err)

	_, err = svc.Signin(context.Background(), dto.SigninDTO{
		Email:    "testuser@gmail.com",
		Password: "mauvais-mdp",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "Mot de passe incorrect", httpErr.Message)
}

func TestSigninLockoutAfterTooManyAttempts(t *testing.T) {
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	svc := newAuthServiceForTest(userRepo, cache)

	_, err := svc.Signup(context.Background(), dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "pouetpouet",
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = svc.Signin(context.Background(), dto.SigninDTO{
			Email:    "testuser@gmail.com",
			Password: "mauvais-mdp",
		})
		require.Error(t, err)
	}

	// même le bon mot de passe est refusé tant que le verrou tient
	_, err = svc.Signin(context.Background(), dto.SigninDTO{
		Email:    "testuser@gmail.com",
		Password: "pouetpouet",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestSigninClearsAttemptCounter(t *testing.T) {
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	svc := newAuthServiceForTest(userRepo, cache)

	_, err := svc.Signup(context.Background(), dto.SignupDTO{
		Username:             "testuser",
		Email:                "testuser@gmail.com",
		Password:             "pouetpouet",
		PasswordConfirmation: "pouetpouet",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _ = svc.Signin(context.Background(), dto.SigninDTO{
			Email:    "testuser@gmail.com",
			Password: "mauvais-mdp",
		})
	}

	_, err = svc.Signin(context.Background(), dto.SigninDTO{
		Email:    "testuser@gmail.com",
		Password: "pouetpouet",
	})
	require.NoError(t, err)

	_, ok := cache.values["login_attempts:testuser@gmail.com"]
	assert.False(t, ok, "le compteur doit être purgé après une connexion réussie")
}
