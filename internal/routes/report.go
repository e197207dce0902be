package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"support-it/internal/controllers"
	"support-it/internal/services"
)

func runReportRouter(secureGroup *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/reports/requests", reportCtrl.ExportRequests)
}
