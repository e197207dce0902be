package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"support-it/pkg/constants"
	"support-it/pkg/utils"
)

var itMemberEmails = []string{
	"technicien1@centre-diagnostic.com",
	"technicien2@centre-diagnostic.com",
}

// seedITMembers crée des comptes it_member de démonstration. Le mot de passe
// initial est l'adresse email, à changer à la première connexion.
func seedITMembers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Création des membres IT...")

	for _, email := range itMemberEmails {
		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM profiles WHERE email = $1", email).Scan(&count); err != nil {
			return fmt.Errorf("vérification du membre IT %s : %w", email, err)
		}
		if count > 0 {
			log.Printf("    - %s existe déjà. Ignoré.", email)
			continue
		}

		hashed, err := utils.HashPassword(email)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx,
			`INSERT INTO profiles (id, email, password, service, role) VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), email, hashed, "IT", constants.RoleITMember)
		if err != nil {
			return fmt.Errorf("insertion du membre IT %s : %w", email, err)
		}
		log.Printf("    - %s créé.", email)
	}
	return nil
}
