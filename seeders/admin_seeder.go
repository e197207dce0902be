package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"support-it/pkg/config"
	"support-it/pkg/constants"
	"support-it/pkg/utils"
)

func seedAdmin(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	log.Println("  - Création du compte administrateur...")

	if cfg.Seed.AdminPassword == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD n'est pas défini")
	}

	var existingID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", cfg.Seed.AdminEmail).Scan(&existingID)
	if err == nil {
		log.Println("    - L'administrateur existe déjà. Ignoré.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("vérification de l'administrateur : %w", err)
	}

	hashed, err := utils.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO profiles (id, email, password, service, role) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), cfg.Seed.AdminEmail, hashed, "IT", constants.RoleAdmin)
	if err != nil {
		return fmt.Errorf("insertion de l'administrateur : %w", err)
	}

	log.Println("    - Administrateur créé.")
	return nil
}
