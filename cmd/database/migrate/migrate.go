package migration

import (
	"Food-Wastage-Management/entities"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Migrate creates the four dashboard tables. The Claims foreign keys come from
// the has-many relations on FoodListing and Receiver, so the parents must be
// migrated in the same call as Claim.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entities.Provider{},
		&entities.Receiver{},
		&entities.FoodListing{},
		&entities.Claim{},
	)
	if err != nil {
		return fmt.Errorf("migrating dashboard tables: %w", err)
	}

	log.Info().Msg("database migration complete")
	return nil
}
