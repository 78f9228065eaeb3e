package models

import "time"

type TicketType string

const (
	TicketReguler TicketType = "REGULER"
	TicketVIP     TicketType = "VIP"
)

type Ticket struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Type      TicketType `gorm:"type:varchar(20);not null" json:"type"`
	Capacity  int        `gorm:"not null" json:"capacity"`
	Price     int        `gorm:"not null" json:"price"`
	EventID   string     `gorm:"not null;index" json:"event_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
