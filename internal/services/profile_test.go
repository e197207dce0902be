package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"support-it/internal/entities"
	"support-it/pkg/constants"
	apperrors "support-it/pkg/errors"
)

type fakeCacheRepository struct {
	entries map[string]string
	sets    int
	dels    []string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{entries: make(map[string]string)}
}

func (f *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.entries[key] = value.(string)
	f.sets++
	return nil
}

func (f *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
		f.dels = append(f.dels, key)
	}
	return nil
}

func TestGetProfileByID(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeProfileRepository, *fakeCacheRepository, ProfileServiceInterface, *entities.Profile) {
		profileRepo := newFakeProfileRepository()
		cacheRepo := newFakeCacheRepository()
		svc := NewProfileService(profileRepo, cacheRepo, zap.NewNop(), time.Minute*10)

		profile := newTestProfile(constants.RoleUser, "RH")
		require.NoError(t, profileRepo.CreateProfile(ctx, profile))
		return profileRepo, cacheRepo, svc, profile
	}

	t.Run("premier appel : lecture en base puis mise en cache", func(t *testing.T) {
		_, cacheRepo, svc, profile := setup()

		got, err := svc.GetProfileByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.Email, got.Email)
		assert.Equal(t, 1, cacheRepo.sets)

		// le hash du mot de passe ne passe jamais dans le cache
		for _, entry := range cacheRepo.entries {
			var cached map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(entry), &cached))
			assert.NotContains(t, cached, "password")
		}
	})

	t.Run("second appel servi par le cache", func(t *testing.T) {
		profileRepo, cacheRepo, svc, profile := setup()

		_, err := svc.GetProfileByID(ctx, profile.ID)
		require.NoError(t, err)

		// la base disparaît : le cache suffit
		delete(profileRepo.byID, profile.ID)
		got, err := svc.GetProfileByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.Email, got.Email)
		assert.Equal(t, 1, cacheRepo.sets)
	})

	t.Run("entrée illisible évincée puis relue en base", func(t *testing.T) {
		_, cacheRepo, svc, profile := setup()

		cacheKey := "profile:" + profile.ID.String()
		cacheRepo.entries[cacheKey] = "{pas du json"

		got, err := svc.GetProfileByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.Email, got.Email)
		assert.Equal(t, []string{cacheKey}, cacheRepo.dels)
		// l'entrée saine a repris la place de l'illisible
		var cached entities.Profile
		require.NoError(t, json.Unmarshal([]byte(cacheRepo.entries[cacheKey]), &cached))
		assert.Equal(t, profile.Email, cached.Email)
	})

	t.Run("profil inconnu", func(t *testing.T) {
		_, _, svc, _ := setup()

		_, err := svc.GetProfileByID(ctx, newTestProfile(constants.RoleUser, "RH").ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
