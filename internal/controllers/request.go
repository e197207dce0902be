package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"support-it/internal/dto"
	"support-it/internal/services"
	"support-it/pkg/constants"
	apperrors "support-it/pkg/errors"
	"support-it/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{
		requestService: requestService,
		logger:         logger,
	}
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	viewer, err := utils.GetProfileFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "corps de requête illisible", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	newID, err := c.requestService.CreateRequest(reqCtx, viewer, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]interface{}{"id": newID}, "Demande créée avec succès", http.StatusCreated)
}

func (c *RequestController) ListRequests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	viewer, err := utils.GetProfileFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filter := ctx.QueryParam("filter")
	requests, err := c.requestService.ListRequests(reqCtx, viewer, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, requests, "Demandes récupérées", http.StatusOK)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	viewer, err := utils.GetProfileFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "identifiant invalide", err), c.logger)
	}

	detail, err := c.requestService.FindRequest(reqCtx, viewer, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, detail, "Demande récupérée", http.StatusOK)
}

// TakeRequest répond 200 dans les deux issues : pris_en_charge indique si
// l'appelant a gagné la prise en charge. Perdre la course n'est pas une
// erreur, le client rafraîchit simplement sa liste.
func (c *RequestController) TakeRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	viewer, err := utils.GetProfileFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "identifiant invalide", err), c.logger)
	}

	taken, err := c.requestService.TakeRequest(reqCtx, viewer, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	message := "Demande prise en charge avec succès"
	if !taken {
		message = "Impossible de prendre cette demande"
	}
	return utils.SuccessResponse(ctx, dto.TakeRequestResultDTO{PrisEnCharge: taken}, message, http.StatusOK)
}

func (c *RequestController) CloseRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	viewer, err := utils.GetProfileFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "identifiant invalide", err), c.logger)
	}

	if err := c.requestService.CloseRequest(reqCtx, viewer, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Demande clôturée avec succès", http.StatusOK)
}

// Referentiels sert les listes fixes des formulaires (services, catégories,
// priorités). Lecture seule, sans authentification.
func (c *RequestController) Referentiels(ctx echo.Context) error {
	refs := dto.ReferentielsDTO{
		Services:           constants.Services,
		IncidentCategories: constants.IncidentCategories,
		OrderCategories:    constants.OrderCategories,
		Priorities:         []string{constants.PriorityBasse, constants.PriorityMoyenne, constants.PriorityUrgente},
	}
	return utils.SuccessResponse(ctx, refs, "Référentiels", http.StatusOK)
}
