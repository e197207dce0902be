package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"support-it/internal/entities"
	"support-it/internal/repositories"
)

type ProfileServiceInterface interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
}

// ProfileService sert les lectures de profil du middleware d'authentification,
// avec un cache Redis court devant la table. Le hash du mot de passe ne passe
// jamais dans le cache (champ exclu de la sérialisation).
type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

func (s *ProfileService) GetProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	cacheKey := fmt.Sprintf("profile:%s", id)

	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
		var profile entities.Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
		s.logger.Warn("entrée de cache profil illisible, éviction et relecture en base", zap.String("key", cacheKey))
		if err := s.cacheRepo.Del(ctx, cacheKey); err != nil {
			s.logger.Warn("éviction du cache profil impossible", zap.Error(err))
		}
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(profile); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("écriture du cache profil impossible", zap.Error(err))
		}
	}
	return profile, nil
}
