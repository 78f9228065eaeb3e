package models

import "time"

// Image holds a WebP-encoded blob owned by exactly one of an event (poster),
// a promotor (profile image) or a user (avatar).
type Image struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Blob       []byte    `gorm:"type:bytea;not null" json:"-"`
	EventID    *string   `gorm:"index" json:"event_id,omitempty"`
	PromotorID *string   `gorm:"index" json:"promotor_id,omitempty"`
	UserID     *string   `gorm:"index" json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
