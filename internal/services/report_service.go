package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"support-it/internal/dto"
	"support-it/internal/entities"
	"support-it/internal/repositories"
	"support-it/pkg/constants"
	apperrors "support-it/pkg/errors"
)

type ReportServiceInterface interface {
	BuildRequestsReport(ctx context.Context, viewer *entities.Profile) (*excelize.File, error)
}

type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{requestRepo: requestRepo, logger: logger}
}

var reportHeaders = []interface{}{
	"ID", "Type", "Catégorie", "Titre", "Description", "Localisation",
	"Priorité", "Service demandeur", "Statut", "Demandeur", "Assigné à",
	"Créée le", "Clôturée le",
}

// BuildRequestsReport exporte l'ensemble des demandes en classeur XLSX.
// Réservé aux admins.
func (s *ReportService) BuildRequestsReport(ctx context.Context, viewer *entities.Profile) (*excelize.File, error) {
	if viewer.Role != constants.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	requests, err := s.requestRepo.ListRequests(ctx, repositories.RequestScope{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Demandes"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "D", "E", 40)
	f.SetColWidth(sheet, "H", "H", 22)
	f.SetColWidth(sheet, "J", "K", 30)
	f.SetColWidth(sheet, "L", "M", 20)

	s.logger.Info("export XLSX des demandes généré",
		zap.Int("lignes", len(requests)),
		zap.String("acteur", viewer.Email))
	return f, nil
}

func reportRow(item dto.RequestDTO) []interface{} {
	assigne := ""
	if item.Assigne != nil {
		assigne = item.Assigne.Email
	}
	closedAt := ""
	if item.ClosedAt.Valid {
		closedAt = item.ClosedAt.Time.Local().Format("2006-01-02 15:04")
	}
	return []interface{}{
		item.ID.String(),
		item.Type,
		item.Category.String,
		item.Title,
		item.Description,
		item.Location,
		item.Priority,
		item.ServiceDemandeur,
		item.Status,
		fmt.Sprintf("%s (%s)", item.Demandeur.Email, item.Demandeur.Service),
		assigne,
		item.CreatedAt.Local().Format("2006-01-02 15:04"),
		closedAt,
	}
}
