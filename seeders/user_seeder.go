package seeders

import (
	"context"
	"fmt"
	"log"

	"bmu-system/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding table 'users'...")

	query := `INSERT INTO users (username, password, first_name, last_name, department, role)
              VALUES ($1, $2, $3, $4, $5, $6)`

	for _, u := range usersData {
		var existingID int64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", u.Username).Scan(&existingID)
		if err == nil {
			log.Printf("    - user '%s' already exists, skipping", u.Username)
			continue
		}

		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hashing password for '%s': %w", u.Username, err)
		}

		if _, err := db.Exec(ctx, query, u.Username, hashed, u.FirstName, u.LastName, u.Department, u.Role); err != nil {
			return fmt.Errorf("inserting user '%s': %w", u.Username, err)
		}
		log.Printf("    - created user '%s' (%s)", u.Username, u.Role)
	}

	return nil
}
