package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lebonmeeple/internal/authz"
	"lebonmeeple/internal/controllers"
	"lebonmeeple/internal/services"
)

func runReportRouter(
	secureGroup *echo.Group,
	reportService services.ReportServiceInterface,
	gatekeeper *authz.Gatekeeper,
	logger *zap.Logger,
) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/reports/posts", reportCtrl.GetPostsReport, gatekeeper.RequireAdmin)
}
