package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"support-it/pkg/config"
)

// SeedStaff crée les comptes de départ : l'administrateur et l'équipe IT.
// Les comptes déjà présents sont laissés tels quels.
func SeedStaff(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("▶️  Création des comptes de départ...")

	if err := seedAdmin(ctx, db, cfg); err != nil {
		log.Fatalf("❌ Erreur à la création de l'administrateur : %v", err)
	}
	if err := seedITMembers(ctx, db); err != nil {
		log.Fatalf("❌ Erreur à la création des membres IT : %v", err)
	}

	log.Println("✅ Comptes de départ en place !")
}
