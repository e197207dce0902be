package main

import (
	"flag"
	"log"

	"support-it/pkg/config"
	"support-it/pkg/database/postgresql"
	"support-it/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 SEEDERS (peuplement de la base)             ")
	log.Println("======================================================")

	runStaff := flag.Bool("staff", false, "Créer l'administrateur et les membres IT")
	runMigrate := flag.Bool("migrate", false, "Appliquer les migrations avant le peuplement")

	flag.Parse()

	if !*runStaff && !*runMigrate {
		log.Println("❌ Aucune opération demandée.")
		log.Println("")
		log.Println("Flags disponibles :")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemples :")
		log.Println("  go run ./seeders/cmd/seed -migrate -staff")
		log.Println("  go run ./seeders/cmd/seed -staff")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 DSN utilisé :", cfg.Postgres.DSN)

	if *runMigrate {
		if err := postgresql.RunMigrations(cfg.Postgres.DSN); err != nil {
			log.Fatalf("❌ Échec des migrations : %v", err)
		}
		log.Println("✅ Migrations appliquées.")
		log.Println("======================================================")
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runStaff {
		seeders.SeedStaff(dbPool, cfg)
		log.Println("======================================================")
	}

	log.Println("✅ Opérations de peuplement terminées.")
	log.Println("======================================================")
}
