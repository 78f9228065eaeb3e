package dto

import (
	"time"

	"github.com/eventku/eventku-api/internal/models"
)

type ImageRef struct {
	Name string `json:"name"`
}

type PromotorSummary struct {
	PromotorName  string    `json:"promotor_name"`
	PromotorImage *ImageRef `json:"promotor_image,omitempty"`
}

type TicketSummary struct {
	ID       string            `json:"id"`
	Type     models.TicketType `json:"type"`
	Price    int               `json:"price"`
	Capacity int               `json:"capacity"`
}

type EventSummaryResponse struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	StartAt     time.Time        `json:"start_at"`
	EndAt       time.Time        `json:"end_at"`
	Location    string           `json:"location"`
	City        string           `json:"city"`
	VenueType   string           `json:"venue_type"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	UseVoucher  bool             `json:"use_voucher"`
	Poster      *ImageRef        `json:"poster,omitempty"`
	Promotor    *PromotorSummary `json:"promotor,omitempty"`
	Tickets     []TicketSummary  `json:"tickets"`
}

type PromotorResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	PromotorName  string    `json:"promotor_name"`
	PromotorImage *ImageRef `json:"promotor_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type TicketResponse struct {
	ID        string            `json:"id"`
	Type      models.TicketType `json:"type"`
	Price     int               `json:"price"`
	Capacity  int               `json:"capacity"`
	EventID   string            `json:"event_id"`
	CreatedAt time.Time         `json:"created_at"`
}

type EventDetailResponse struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	StartAt     time.Time         `json:"start_at"`
	EndAt       time.Time         `json:"end_at"`
	Location    string            `json:"location"`
	City        string            `json:"city"`
	VenueType   string            `json:"venue_type"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	UseVoucher  bool              `json:"use_voucher"`
	Poster      *ImageRef         `json:"poster,omitempty"`
	Promotor    *PromotorResponse `json:"promotor,omitempty"`
	Tickets     []TicketResponse  `json:"tickets"`
}

type CreateEventResponse struct {
	Title string `json:"title"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

func toImageRef(img *models.Image) *ImageRef {
	if img == nil {
		return nil
	}
	return &ImageRef{Name: img.Name}
}

func toTicketSummaries(tickets []models.Ticket) []TicketSummary {
	out := make([]TicketSummary, len(tickets))
	for i, t := range tickets {
		out[i] = TicketSummary{ID: t.ID, Type: t.Type, Price: t.Price, Capacity: t.Capacity}
	}
	return out
}

func ToEventSummaryResponse(e *models.Event) EventSummaryResponse {
	resp := EventSummaryResponse{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		StartAt:     e.StartAt,
		EndAt:       e.EndAt,
		Location:    e.Location,
		City:        e.City,
		VenueType:   e.VenueType,
		Category:    e.Category,
		Description: e.Description,
		UseVoucher:  e.UseVoucher,
		Poster:      toImageRef(e.Poster),
		Tickets:     toTicketSummaries(e.Tickets),
	}
	if e.Promotor != nil {
		resp.Promotor = &PromotorSummary{
			PromotorName:  e.Promotor.PromotorName,
			PromotorImage: toImageRef(e.Promotor.PromotorImage),
		}
	}
	return resp
}

func ToEventDetailResponse(e *models.Event) EventDetailResponse {
	resp := EventDetailResponse{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		StartAt:     e.StartAt,
		EndAt:       e.EndAt,
		Location:    e.Location,
		City:        e.City,
		VenueType:   e.VenueType,
		Category:    e.Category,
		Description: e.Description,
		UseVoucher:  e.UseVoucher,
		Poster:      toImageRef(e.Poster),
	}
	if e.Promotor != nil {
		resp.Promotor = &PromotorResponse{
			ID:            e.Promotor.ID,
			UserID:        e.Promotor.UserID,
			PromotorName:  e.Promotor.PromotorName,
			PromotorImage: toImageRef(e.Promotor.PromotorImage),
			CreatedAt:     e.Promotor.CreatedAt,
		}
	}
	resp.Tickets = make([]TicketResponse, len(e.Tickets))
	for i, t := range e.Tickets {
		resp.Tickets[i] = TicketResponse{
			ID:        t.ID,
			Type:      t.Type,
			Price:     t.Price,
			Capacity:  t.Capacity,
			EventID:   t.EventID,
			CreatedAt: t.CreatedAt,
		}
	}
	return resp
}
