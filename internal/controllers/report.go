package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lebonmeeple/internal/repositories"
	"lebonmeeple/internal/services"
	"lebonmeeple/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetPostsReport rend le rapport en JSON, ou en XLSX si ?format=xlsx.
func (c *ReportController) GetPostsReport(ctx echo.Context) error {
	format := strings.ToLower(ctx.QueryParam("format"))

	data, err := c.reportService.GetPostsReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Rapport généré", http.StatusOK)
}

var reportHeaders = []string{
	"ID", "Titre", "Auteur", "E-mail de l'auteur", "Commentaires", "Date de publication",
}

func rowToSlice(item repositories.PostReportRow) []interface{} {
	return []interface{}{
		item.ID, item.Title, item.Author, item.AuthorEmail,
		item.CommentCount, item.CreatedAt.Format("02.01.2006 15:04"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []repositories.PostReportRow) error {
	f := excelize.NewFile()
	sheet := "Billets"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "D", 25)
	f.SetColWidth(sheet, "F", "F", 20)

	fileName := fmt.Sprintf("billets_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
