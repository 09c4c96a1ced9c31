// Package snapshot persists the last successfully validated collection so a
// restarted process can serve recent content ahead of the bundled fallback.
// The whole tier is best-effort: failures log and degrade, never propagate.
package snapshot

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
)

// Snapshot is one persisted payload, keyed like the cache ("artworks",
// "artist").
type Snapshot struct {
	Key       string    `gorm:"primaryKey"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save upserts the payload for key. Errors are logged and swallowed: losing a
// snapshot must never fail a successful fetch.
func (s *Store) Save(ctx context.Context, key string, payload []byte) {
	snap := Snapshot{Key: key, Payload: payload, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Save(&snap).Error
	if err != nil {
		log.Printf("snapshot: save failed for %s: %v", key, err)
	}
}

// Load returns the last-known-good payload for key, if any.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool) {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "key = ?", key).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("snapshot: load failed for %s: %v", key, err)
		}
		return nil, false
	}
	return snap.Payload, true
}
