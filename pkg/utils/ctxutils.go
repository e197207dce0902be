package utils

import (
	"context"

	"support-it/internal/entities"
	"support-it/pkg/contextkeys"
	apperrors "support-it/pkg/errors"
)

// GetProfileFromCtx retourne le profil déposé dans le contexte par le
// middleware d'authentification.
func GetProfileFromCtx(ctx context.Context) (*entities.Profile, error) {
	profile, ok := ctx.Value(contextkeys.ProfileKey).(*entities.Profile)
	if !ok || profile == nil {
		return nil, apperrors.ErrProfileNotFoundInContext
	}
	return profile, nil
}
