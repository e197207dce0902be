package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"support-it/internal/controllers"
	"support-it/internal/services"
)

func runRequestRouter(api *echo.Group, secureGroup *echo.Group, requestService services.RequestServiceInterface, logger *zap.Logger) {
	requestCtrl := controllers.NewRequestController(requestService, logger)

	// listes fixes des formulaires, servies sans jeton
	api.GET("/referentiels", requestCtrl.Referentiels)

	{
		secureGroup.GET("/requests", requestCtrl.ListRequests)
		secureGroup.POST("/requests", requestCtrl.CreateRequest)
		secureGroup.GET("/requests/:id", requestCtrl.FindRequest)
		secureGroup.POST("/requests/:id/prendre", requestCtrl.TakeRequest)
		secureGroup.POST("/requests/:id/cloturer", requestCtrl.CloseRequest)
	}
}
