package seeds

import (
	"log"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	if err := EnsureAdminUser(db); err != nil {
		log.Fatalf("❌ Seed do admin falhou: %v", err)
	}
}
