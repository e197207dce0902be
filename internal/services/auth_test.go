package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"support-it/internal/dto"
	"support-it/internal/entities"
	"support-it/pkg/constants"
	apperrors "support-it/pkg/errors"
	"support-it/pkg/service"
)

type fakeProfileRepository struct {
	byEmail map[string]*entities.Profile
	byID    map[uuid.UUID]*entities.Profile
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{
		byEmail: make(map[string]*entities.Profile),
		byID:    make(map[uuid.UUID]*entities.Profile),
	}
}

func (f *fakeProfileRepository) CreateProfile(ctx context.Context, profile *entities.Profile) error {
	if _, exists := f.byEmail[profile.Email]; exists {
		return apperrors.NewInvalidInputError("cette adresse email est déjà utilisée")
	}
	f.byEmail[profile.Email] = profile
	f.byID[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	profile, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	profile, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return profile, nil
}

func newAuthServiceForTest() (AuthServiceInterface, *fakeProfileRepository, service.JWTService) {
	repo := newFakeProfileRepository()
	jwtSvc := service.NewJWTService("clef-de-test", time.Minute*15, time.Hour)
	return NewAuthService(repo, jwtSvc, zap.NewNop()), repo, jwtSvc
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("le rôle est toujours user à l'inscription", func(t *testing.T) {
		svc, repo, _ := newAuthServiceForTest()
		profile, err := svc.Register(ctx, dto.RegisterDTO{
			Email:    "nadia@centre-diagnostic.com",
			Password: "motdepasse",
			Service:  "Laboratoire",
		})
		require.NoError(t, err)
		assert.Equal(t, constants.RoleUser, profile.Role)
		assert.Equal(t, "Laboratoire", profile.Service)

		stored, err := repo.FindProfileByEmail(ctx, "nadia@centre-diagnostic.com")
		require.NoError(t, err)
		// le hash est stocké, jamais le mot de passe en clair
		assert.NotEqual(t, "motdepasse", stored.Password)
	})

	t.Run("service inconnu rejeté", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()
		_, err := svc.Register(ctx, dto.RegisterDTO{
			Email:    "x@centre-diagnostic.com",
			Password: "motdepasse",
			Service:  "Cafétéria",
		})
		var invalid *apperrors.InvalidInputError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("email déjà pris", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()
		payload := dto.RegisterDTO{
			Email:    "double@centre-diagnostic.com",
			Password: "motdepasse",
			Service:  "RH",
		}
		_, err := svc.Register(ctx, payload)
		require.NoError(t, err)
		_, err = svc.Register(ctx, payload)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, jwtSvc := newAuthServiceForTest()

	_, err := svc.Register(ctx, dto.RegisterDTO{
		Email:    "omar@centre-diagnostic.com",
		Password: "motdepasse",
		Service:  "Stock",
	})
	require.NoError(t, err)

	t.Run("connexion réussie : paire de jetons valide", func(t *testing.T) {
		tokens, err := svc.Login(ctx, dto.LoginDTO{Email: "omar@centre-diagnostic.com", Password: "motdepasse"})
		require.NoError(t, err)

		accessClaims, err := jwtSvc.ValidateToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.False(t, accessClaims.IsRefreshToken)

		refreshClaims, err := jwtSvc.ValidateToken(tokens.RefreshToken)
		require.NoError(t, err)
		assert.True(t, refreshClaims.IsRefreshToken)
		assert.Equal(t, accessClaims.UserID, refreshClaims.UserID)
	})

	t.Run("mot de passe incorrect", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginDTO{Email: "omar@centre-diagnostic.com", Password: "autre"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("email inconnu : même erreur, pas d'indice", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginDTO{Email: "inconnu@centre-diagnostic.com", Password: "motdepasse"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(ctx, dto.RegisterDTO{
		Email:    "ines@centre-diagnostic.com",
		Password: "motdepasse",
		Service:  "Cotation",
	})
	require.NoError(t, err)
	tokens, err := svc.Login(ctx, dto.LoginDTO{Email: "ines@centre-diagnostic.com", Password: "motdepasse"})
	require.NoError(t, err)

	t.Run("le jeton de rafraîchissement renouvelle la paire", func(t *testing.T) {
		renewed, err := svc.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, renewed.AccessToken)
		assert.NotEmpty(t, renewed.RefreshToken)
	})

	t.Run("un jeton d'accès est refusé", func(t *testing.T) {
		_, err := svc.Refresh(ctx, tokens.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
	})

	t.Run("jeton illisible", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "pas-un-jeton")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
