package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"support-it/internal/repositories"
	"support-it/internal/services"
	"support-it/pkg/config"
	"support-it/pkg/middleware"
	"support-it/pkg/service"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Request *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: création des routes")

	api := e.Group("/api")

	profileRepo := repositories.NewProfileRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	requestRepo := repositories.NewRequestRepository(dbConn)

	profileService := services.NewProfileService(profileRepo, cacheRepo, loggers.Auth, cfg.ProfileCacheTTL)
	authService := services.NewAuthService(profileRepo, jwtSvc, loggers.Auth)
	requestService := services.NewRequestService(requestRepo, loggers.Request)
	reportService := services.NewReportService(requestRepo, loggers.Main)

	authMW := middleware.NewAuthMiddleware(jwtSvc, profileService, loggers.Auth)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, authMW, loggers.Auth)
	runRequestRouter(api, secureGroup, requestService, loggers.Request)
	runReportRouter(secureGroup, reportService, loggers.Main)

	loggers.Main.Info("InitRouter: routes créées")
}
