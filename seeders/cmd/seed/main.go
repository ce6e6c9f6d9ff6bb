package main

import (
	"flag"
	"log"

	"bmu-system/pkg/config"
	"bmu-system/pkg/database/postgresql"
	"bmu-system/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "seed the default user accounts")
	runEquipment := flag.Bool("equipment", false, "seed the starter equipment inventory")
	runAll := flag.Bool("all", false, "run every seeder (equivalent to -users -equipment)")

	flag.Parse()

	if !*runUsers && !*runEquipment && !*runAll {
		log.Println("no seeder selected")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("examples:")
		log.Println("  go run ./seeders/cmd/seed -users")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
	}
	if *runAll || *runEquipment {
		seeders.SeedEquipment(dbPool)
	}

	log.Println("seeding complete")
}
