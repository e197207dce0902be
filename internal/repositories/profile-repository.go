package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"support-it/internal/entities"
	apperrors "support-it/pkg/errors"
)

type ProfileRepositoryInterface interface {
	CreateProfile(ctx context.Context, profile *entities.Profile) error
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	FindProfileByEmail(ctx context.Context, email string) (*entities.Profile, error)
}

type ProfileRepository struct {
	storage *pgxpool.Pool
}

func NewProfileRepository(storage *pgxpool.Pool) ProfileRepositoryInterface {
	return &ProfileRepository{storage: storage}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *entities.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password, service, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := r.storage.Exec(ctx, query,
		profile.ID, profile.Email, profile.Password, profile.Service, profile.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewInvalidInputError("cette adresse email est déjà utilisée")
		}
		return fmt.Errorf("erreur de création du profil : %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	return r.findProfile(ctx, `WHERE id = $1`, id)
}

func (r *ProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	return r.findProfile(ctx, `WHERE email = $1`, email)
}

func (r *ProfileRepository) findProfile(ctx context.Context, where string, arg interface{}) (*entities.Profile, error) {
	query := `SELECT id, email, password, service, role, created_at FROM profiles ` + where

	var profile entities.Profile
	err := r.storage.QueryRow(ctx, query, arg).Scan(
		&profile.ID, &profile.Email, &profile.Password,
		&profile.Service, &profile.Role, &profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erreur de lecture du profil : %w", err)
	}
	return &profile, nil
}
