package services

import (
	"context"

	"lebonmeeple/internal/repositories"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetPostsReport(ctx context.Context) ([]repositories.PostReportRow, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) GetPostsReport(ctx context.Context) ([]repositories.PostReportRow, error) {
	rows, err := s.reportRepo.GetPostsReport(ctx)
	if err != nil {
		s.logger.Error("GetPostsReport: échec de la lecture des données", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
