package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback represents the persisted feedback record. Sentiment and
// priority are intentionally absent: they are derived from rating on
// read, so the classification rule can change without a backfill.
type Feedback struct {
	ID                 uint      `gorm:"primaryKey"`
	PublicID           string    `gorm:"uniqueIndex;size:64"`
	Timestamp          time.Time `gorm:"index"`
	Rating             int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review             string    `gorm:"type:text;not null"`
	AIResponse         string    `gorm:"type:text"`
	AISummary          string    `gorm:"type:text"`
	RecommendedActions string    `gorm:"type:text"`
	CreatedAt          time.Time
}

// BeforeCreate assigns identifiers and normalizes the timestamp to UTC.
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.PublicID == "" {
		f.PublicID = uuid.NewString()
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now()
	}
	f.Timestamp = f.Timestamp.UTC()
	return nil
}
