package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"support-it/internal/dto"
	"support-it/internal/entities"
	"support-it/internal/repositories"
	"support-it/pkg/constants"
	apperrors "support-it/pkg/errors"
)

type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, viewer *entities.Profile, payload dto.CreateRequestDTO) (uuid.UUID, error)
	ListRequests(ctx context.Context, viewer *entities.Profile, filter string) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, viewer *entities.Profile, id uuid.UUID) (*dto.RequestDTO, error)
	TakeRequest(ctx context.Context, viewer *entities.Profile, id uuid.UUID) (bool, error)
	CloseRequest(ctx context.Context, viewer *entities.Profile, id uuid.UUID) error
}

type RequestService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewRequestService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) RequestServiceInterface {
	return &RequestService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// CreateRequest enregistre une nouvelle demande au nom du profil appelant.
// Toute demande naît ouverte et non assignée.
func (s *RequestService) CreateRequest(ctx context.Context, viewer *entities.Profile, payload dto.CreateRequestDTO) (uuid.UUID, error) {
	if err := validateCreatePayload(&payload); err != nil {
		return uuid.Nil, err
	}

	newID, err := s.requestRepo.CreateRequest(ctx, viewer.ID, payload)
	if err != nil {
		s.logger.Error("échec de création d'une demande", zap.Error(err), zap.String("demandeur", viewer.Email))
		return uuid.Nil, err
	}

	s.logger.Info("demande créée",
		zap.String("requestId", newID.String()),
		zap.String("type", payload.Type),
		zap.String("demandeur", viewer.Email))
	return newID, nil
}

// ListRequests applique le périmètre de visibilité : un profil `user` ne voit
// que ses propres demandes, quel que soit le filtre demandé ; IT et admin
// choisissent entre tout, non assignées et les leurs.
func (s *RequestService) ListRequests(ctx context.Context, viewer *entities.Profile, filter string) ([]dto.RequestDTO, error) {
	var scope repositories.RequestScope

	if !constants.IsITOrAdmin(viewer.Role) {
		ownerID := viewer.ID
		scope.OwnerID = &ownerID
	} else {
		switch filter {
		case constants.FilterAssigned:
			assignedTo := viewer.ID
			scope.AssignedTo = &assignedTo
		case constants.FilterUnassigned:
			scope.OnlyUnassigned = true
		case constants.FilterAll, "":
			// pas de restriction
		default:
			return nil, apperrors.NewInvalidInputError("filtre inconnu : %s", filter)
		}
	}

	return s.requestRepo.ListRequests(ctx, scope)
}

func (s *RequestService) FindRequest(ctx context.Context, viewer *entities.Profile, id uuid.UUID) (*dto.RequestDTO, error) {
	detail, err := s.requestRepo.FindRequestDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if !constants.IsITOrAdmin(viewer.Role) && detail.Demandeur.ID != viewer.ID {
		return nil, apperrors.ErrForbidden
	}
	return detail, nil
}

// TakeRequest tente la prise en charge exclusive. Le résultat false n'est pas
// une erreur : la demande a été prise entre-temps, n'était plus ouverte, ou
// n'existe pas ; l'appelant rafraîchit sa vue et en tire les conséquences.
func (s *RequestService) TakeRequest(ctx context.Context, viewer *entities.Profile, id uuid.UUID) (bool, error) {
	if !constants.IsITOrAdmin(viewer.Role) {
		return false, apperrors.ErrForbidden
	}

	taken, err := s.requestRepo.TakeRequest(ctx, id, viewer.ID)
	if err != nil {
		return false, err
	}

	if taken {
		s.logger.Info("demande prise en charge",
			zap.String("requestId", id.String()),
			zap.String("assigne", viewer.Email))
	} else {
		s.logger.Info("prise en charge refusée, demande déjà prise ou fermée",
			zap.String("requestId", id.String()),
			zap.String("acteur", viewer.Email))
	}
	return taken, nil
}

// CloseRequest clôt une demande en cours. Seuls l'assigné et un admin peuvent
// clôturer ; l'état est revérifié par la mise à jour conditionnelle elle-même.
func (s *RequestService) CloseRequest(ctx context.Context, viewer *entities.Profile, id uuid.UUID) error {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return err
	}

	if req.Status != constants.StatusEnCours {
		return apperrors.ErrEtatInvalide
	}

	isAssignee := req.AssignedTo.Valid && req.AssignedTo.UUID == viewer.ID
	if !isAssignee && viewer.Role != constants.RoleAdmin {
		return apperrors.ErrForbidden
	}

	closed, err := s.requestRepo.CloseRequest(ctx, id)
	if err != nil {
		return err
	}
	if !closed {
		// l'état a changé entre la lecture et l'écriture
		return apperrors.ErrEtatInvalide
	}

	s.logger.Info("demande clôturée",
		zap.String("requestId", id.String()),
		zap.String("acteur", viewer.Email))
	return nil
}

func validateCreatePayload(payload *dto.CreateRequestDTO) error {
	if payload.Type == "" || payload.Title == "" || payload.Description == "" ||
		payload.Location == "" || payload.ServiceDemandeur == "" {
		return apperrors.NewInvalidInputError("tous les champs obligatoires doivent être renseignés")
	}
	if payload.Type != constants.TypeIncident && payload.Type != constants.TypeOrder {
		return apperrors.NewInvalidInputError("type de demande inconnu : %s", payload.Type)
	}
	if payload.Priority == "" {
		payload.Priority = constants.PriorityBasse
	}
	switch payload.Priority {
	case constants.PriorityBasse, constants.PriorityMoyenne, constants.PriorityUrgente:
	default:
		return apperrors.NewInvalidInputError("priorité inconnue : %s", payload.Priority)
	}
	if !constants.IsValidService(payload.ServiceDemandeur) {
		return apperrors.NewInvalidInputError("service demandeur inconnu : %s", payload.ServiceDemandeur)
	}
	return nil
}
