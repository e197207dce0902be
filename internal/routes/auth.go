package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"support-it/internal/controllers"
	"support-it/internal/services"
	"support-it/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh", authCtrl.Refresh)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
