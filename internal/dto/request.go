package dto

import "time"

// CreateEventRequest binds the multipart form the web client submits. The
// voucher flag arrives as the literal string "true"/"false".
type CreateEventRequest struct {
	Title       string    `form:"title" validate:"required"`
	StartAt     time.Time `form:"startAt" validate:"required"`
	EndAt       time.Time `form:"endAt" validate:"required"`
	Location    string    `form:"location" validate:"required"`
	Description string    `form:"description"`
	City        string    `form:"city" validate:"required"`
	VenueType   string    `form:"venueType" validate:"required"`
	Category    string    `form:"category" validate:"required"`
	UseVoucher  string    `form:"useVoucher"`

	PriceReguler    int  `form:"priceReguler" validate:"gte=0"`
	CapacityReguler int  `form:"capacityReguler" validate:"gte=0"`
	PriceVip        *int `form:"priceVip"`
	CapacityVip     *int `form:"capacityVip"`
}

type EditEventRequest struct {
	Slug        *string    `json:"slug"`
	Title       *string    `json:"title"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	City        *string    `json:"city"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	VenueType   *string    `json:"venueType"`
}

type LoginRequest struct {
	UsernameEmail string `json:"username_email" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	PromotorName string `json:"promotor_name"`
}
