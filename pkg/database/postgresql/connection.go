package postgresql

import (
	"context"
	"database/sql"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"support-it/migrations"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Erreur de création du pool de connexions : %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Impossible de joindre PostgreSQL : %v", err)
	}

	log.Println("✅ Connecté à PostgreSQL")
	return dbpool
}

// RunMigrations applique les migrations goose embarquées. goose travaille sur
// database/sql, d'où la connexion séparée via le driver stdlib de pgx.
func RunMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
