package repository

import (
	"context"

	"github.com/eventku/eventku-api/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	GetDB() *gorm.DB
	TitleExists(ctx context.Context, tx *gorm.DB, title string) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, event *models.Event) error
	CreateImage(ctx context.Context, tx *gorm.DB, image *models.Image) error
	CreateTicket(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) (int64, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByCategory(ctx context.Context, category string) ([]models.Event, error)
	FindBySlug(ctx context.Context, slug string) (*models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) TitleExists(ctx context.Context, tx *gorm.DB, title string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("title = ?", title).
		Count(&count).Error
	return count > 0, err
}

func (r *eventRepository) Create(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return tx.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) CreateImage(ctx context.Context, tx *gorm.DB, image *models.Image) error {
	return tx.WithContext(ctx).Create(image).Error
}

func (r *eventRepository) CreateTicket(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return tx.WithContext(ctx).Create(ticket).Error
}

func (r *eventRepository) UpdateFields(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.withSummaryRelations(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByCategory(ctx context.Context, category string) ([]models.Event, error) {
	var events []models.Event
	if err := r.withSummaryRelations(r.db.WithContext(ctx)).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var event models.Event
	err := r.withSummaryRelations(r.db.WithContext(ctx)).
		Where("slug = ?", slug).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// withSummaryRelations preloads the projection the listing endpoints expose:
// poster name, promotor name with its image name, and ticket tiers. Image
// blobs are never loaded for listings.
func (r *eventRepository) withSummaryRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Poster", selectImageName).
		Preload("Promotor").
		Preload("Promotor.PromotorImage", selectImageName).
		Preload("Tickets")
}

func selectImageName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "event_id", "promotor_id", "user_id")
}
