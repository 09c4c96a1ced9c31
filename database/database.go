package database

import (
	"log"

	"portfolio-backend/internal/infra/snapshot"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitSnapshots opens the optional durable snapshot store. An empty DSN or a
// connection failure disables the tier rather than stopping the service: the
// read path still has the cache and the bundled fallback behind it.
func InitSnapshots(dsn string) *snapshot.Store {
	if dsn == "" {
		log.Println("DB_URL not set. Snapshot tier disabled.")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Println("❌ Failed to connect to database, snapshot tier disabled:", err)
		return nil
	}

	store, err := snapshot.New(db)
	if err != nil {
		log.Println("❌ Snapshot migration failed, snapshot tier disabled:", err)
		return nil
	}

	log.Println("✅ Snapshot tier connected and migrated")
	return store
}
