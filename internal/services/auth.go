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
	"support-it/pkg/service"
	"support-it/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.Profile, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	profileRepo repositories.ProfileRepositoryInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthService(
	profileRepo repositories.ProfileRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		profileRepo: profileRepo,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

// Register crée le profil à l'inscription, toujours avec le rôle `user` :
// l'élévation vers it_member ou admin est une action d'administration
// (seeder), jamais une entrée de l'API.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.Profile, error) {
	if !constants.IsValidService(payload.Service) {
		return nil, apperrors.NewInvalidInputError("service inconnu : %s", payload.Service)
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	profile := &entities.Profile{
		ID:       uuid.New(),
		Email:    payload.Email,
		Password: hashed,
		Service:  payload.Service,
		Role:     constants.RoleUser,
	}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profil créé",
		zap.String("email", profile.Email),
		zap.String("service", profile.Service))
	return profile, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	profile, err := s.profileRepo.FindProfileByEmail(ctx, payload.Email)
	if err != nil {
		s.logger.Warn("tentative de connexion avec un email inconnu", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPassword(profile.Password, payload.Password) {
		s.logger.Warn("mot de passe incorrect", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(profile.ID.String())
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
