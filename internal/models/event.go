package models

import "time"

type Event struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"uniqueIndex;not null" json:"title"`
	StartAt     time.Time `gorm:"not null" json:"start_at"`
	EndAt       time.Time `gorm:"not null" json:"end_at"`
	Location    string    `gorm:"not null" json:"location"`
	City        string    `json:"city"`
	VenueType   string    `json:"venue_type"`
	// Stored canonically upper-cased so category lookups stay case-insensitive.
	Category    string    `gorm:"not null;index" json:"category"`
	Description string    `json:"description"`
	UseVoucher  bool      `json:"use_voucher"`
	PromotorID  string    `gorm:"not null" json:"promotor_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Poster   *Image    `gorm:"foreignKey:EventID" json:"poster,omitempty"`
	Promotor *Promotor `gorm:"foreignKey:PromotorID" json:"promotor,omitempty"`
	Tickets  []Ticket  `gorm:"foreignKey:EventID" json:"tickets,omitempty"`
}
