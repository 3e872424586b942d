package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/authz"
	"lebonmeeple/internal/repositories"
	"lebonmeeple/internal/services"
	"lebonmeeple/pkg/config"
	"lebonmeeple/pkg/filestorage"
	"lebonmeeple/pkg/middleware"
	"lebonmeeple/pkg/service"
)

type Loggers struct {
	Main *zap.Logger
	Auth *zap.Logger
	Post *zap.Logger
	User *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: création des routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)
	fileStorage, err := filestorage.NewLocalFileStorage("uploads")
	if err != nil {
		loggers.Main.Fatal("impossible de créer le stockage de fichiers", zap.Error(err))
	}

	// --- répertoires ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.User)
	postRepo := repositories.NewPostRepository(dbConn, loggers.Post)
	commentRepo := repositories.NewCommentRepository(dbConn, loggers.Post)
	gameRepo := repositories.NewGameRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- services ---
	authService := services.NewAuthService(userRepo, cacheRepo, loggers.Auth, &cfg.Auth)
	userService := services.NewUserService(userRepo, loggers.User)
	postService := services.NewPostService(postRepo, userRepo, commentRepo, gameRepo, loggers.Post)
	commentService := services.NewCommentService(commentRepo, postRepo, loggers.Post)
	gameService := services.NewGameService(gameRepo, cacheRepo, loggers.Main)
	reportService := services.NewReportService(reportRepo, loggers.Main)

	// --- contrôle d'accès ---
	gatekeeper := authz.NewGatekeeper(postRepo, commentRepo, loggers.Main)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authService, userService, jwtSvc, fileStorage, gatekeeper, loggers.Auth)
	runPostRouter(api, secureGroup, postService, gatekeeper, loggers.Post)
	runCommentRouter(api, secureGroup, commentService, gatekeeper, loggers.Post)
	runGameRouter(api, gameService, loggers.Main)
	runReportRouter(secureGroup, reportService, gatekeeper, loggers.Main)

	loggers.Main.Info("InitRouter: routes créées")
}
