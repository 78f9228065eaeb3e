package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventku/eventku-api/internal/models"
	"github.com/eventku/eventku-api/internal/repository"
	"github.com/eventku/eventku-api/pkg/imaging"
	"github.com/eventku/eventku-api/pkg/rabbitmq"
	"github.com/eventku/eventku-api/pkg/slugid"
	"gorm.io/gorm"
)

var (
	ErrTitleTaken       = errors.New("title is used, try another title")
	ErrVIPPriceTooLow   = errors.New("vip ticket price cannot be less than 1000")
	ErrNegativeCapacity = errors.New("ticket capacity cannot be negative")
	ErrEventNotFound    = errors.New("event not found")
)

// MinVIPPrice is the business floor for a VIP tier, in currency units.
const MinVIPPrice = 1000

type CreateEventInput struct {
	Title       string
	StartAt     time.Time
	EndAt       time.Time
	Location    string
	Description string
	City        string
	VenueType   string
	Category    string
	UseVoucher  bool
	PromotorID  string

	RegularPrice    int
	RegularCapacity int
	VIPPrice        *int
	VIPCapacity     *int

	// Raw upload bytes for the poster, nil when no file was sent.
	Poster      []byte
	PosterField string
}

type EditEventInput struct {
	Slug        *string
	Title       *string
	StartAt     *time.Time
	EndAt       *time.Time
	City        *string
	Location    *string
	Description *string
	Category    *string
	VenueType   *string
}

// TicketSpec describes one tier to be created for an event. Tiers are built
// and validated as an ordered list before any rows are written.
type TicketSpec struct {
	Type     models.TicketType
	Price    int
	Capacity int
}

type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (string, error)
	EditEvent(ctx context.Context, id string, in EditEventInput) error
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByCategory(ctx context.Context, category string) ([]models.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*models.Event, error)
}

type eventService struct {
	repo      repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewEventService(repo repository.EventRepository, publisher *rabbitmq.Publisher) EventService {
	return &eventService{repo: repo, publisher: publisher}
}

// buildTicketSpecs turns the raw tier inputs into the ordered list of tiers
// to create. The regular tier is mandatory; a VIP tier is added only when
// both its price and capacity were supplied.
func buildTicketSpecs(in CreateEventInput) ([]TicketSpec, error) {
	if in.VIPPrice != nil && *in.VIPPrice < MinVIPPrice {
		return nil, ErrVIPPriceTooLow
	}
	if in.VIPCapacity != nil && *in.VIPCapacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if in.RegularCapacity < 0 {
		return nil, ErrNegativeCapacity
	}

	specs := []TicketSpec{{
		Type:     models.TicketReguler,
		Price:    in.RegularPrice,
		Capacity: in.RegularCapacity,
	}}

	if in.VIPPrice != nil && in.VIPCapacity != nil {
		specs = append(specs, TicketSpec{
			Type:     models.TicketVIP,
			Price:    *in.VIPPrice,
			Capacity: *in.VIPCapacity,
		})
	}

	return specs, nil
}

// CreateEvent performs the whole creation as one atomic unit: the event row,
// the optional poster image and every ticket tier appear together or not at
// all. The duplicate-title check runs inside the same transaction as the
// writes; the unique index on title is the backstop for concurrent creates.
func (s *eventService) CreateEvent(ctx context.Context, in CreateEventInput) (string, error) {
	specs, err := buildTicketSpecs(in)
	if err != nil {
		return "", err
	}

	var poster []byte
	if len(in.Poster) > 0 {
		poster, err = imaging.ToWebP(in.Poster)
		if err != nil {
			return "", fmt.Errorf("transcode poster: %w", err)
		}
	}

	title := strings.TrimSpace(in.Title)

	err = s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.repo.TitleExists(ctx, tx, title)
		if err != nil {
			return err
		}
		if taken {
			return ErrTitleTaken
		}

		event := &models.Event{
			ID:          slugid.NewID(),
			Slug:        slugid.WithSuffix(title),
			Title:       title,
			StartAt:     in.StartAt,
			EndAt:       in.EndAt,
			Location:    in.Location,
			City:        in.City,
			VenueType:   in.VenueType,
			Category:    strings.ToUpper(in.Category),
			Description: in.Description,
			UseVoucher:  in.UseVoucher,
			PromotorID:  in.PromotorID,
		}
		if err := s.repo.Create(ctx, tx, event); err != nil {
			return err
		}

		if poster != nil {
			eventID := event.ID
			image := &models.Image{
				ID:      slugid.NewID(),
				Name:    "event_poster-" + slugid.WithSuffix(in.PosterField),
				Blob:    poster,
				EventID: &eventID,
			}
			if err := s.repo.CreateImage(ctx, tx, image); err != nil {
				return err
			}
		}

		for _, spec := range specs {
			ticket := &models.Ticket{
				ID:       slugid.NewID(),
				Type:     spec.Type,
				Capacity: spec.Capacity,
				Price:    spec.Price,
				EventID:  event.ID,
			}
			if err := s.repo.CreateTicket(ctx, tx, ticket); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", map[string]string{"title": title})
	}

	return title, nil
}

// EditEvent overwrites the supplied subset of mutable fields. Title and slug
// uniqueness are not re-checked here; the unique indexes still reject hard
// conflicts.
func (s *eventService) EditEvent(ctx context.Context, id string, in EditEventInput) error {
	fields := map[string]any{}
	if in.Slug != nil {
		fields["slug"] = *in.Slug
	}
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.StartAt != nil {
		fields["start_at"] = *in.StartAt
	}
	if in.EndAt != nil {
		fields["end_at"] = *in.EndAt
	}
	if in.City != nil {
		fields["city"] = *in.City
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = strings.ToUpper(*in.Category)
	}
	if in.VenueType != nil {
		fields["venue_type"] = *in.VenueType
	}
	if len(fields) == 0 {
		return nil
	}

	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.repo.UpdateFields(ctx, tx, id, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.updated", map[string]string{"id": id})
	}

	return nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *eventService) ListEventsByCategory(ctx context.Context, category string) ([]models.Event, error) {
	return s.repo.FindByCategory(ctx, strings.ToUpper(category))
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}
