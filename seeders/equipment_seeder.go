package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding table 'equipment'...")

	query := `INSERT INTO equipment (category, sub_category, asset_code, name, unit, description, is_leased)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, e := range equipmentData {
		var existingID int64
		err := db.QueryRow(ctx, "SELECT id FROM equipment WHERE asset_code = $1", e.AssetCode).Scan(&existingID)
		if err == nil {
			log.Printf("    - equipment '%s' already exists, skipping", e.AssetCode)
			continue
		}

		if _, err := db.Exec(ctx, query, e.Category, e.SubCategory, e.AssetCode, e.Name, e.Unit, e.Description, e.IsLeased); err != nil {
			return fmt.Errorf("inserting equipment '%s': %w", e.AssetCode, err)
		}
		log.Printf("    - created equipment '%s' (%s)", e.AssetCode, e.Name)
	}

	return nil
}
