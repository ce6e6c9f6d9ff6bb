package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers creates the default accounts for every role. Passwords equal
// usernames and are meant to be changed on first login.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding users...")

	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	log.Println("users seeded")
}

// SeedEquipment fills the inventory with a starter set of office equipment.
func SeedEquipment(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding equipment...")

	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("failed to seed equipment: %v", err)
	}
	log.Println("equipment seeded")
}
