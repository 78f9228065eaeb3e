package repository

import (
	"context"

	"github.com/eventku/eventku-api/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetDB() *gorm.DB
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	CreatePromotor(ctx context.Context, tx *gorm.DB, promotor *models.Promotor) error
	IdentityExists(ctx context.Context, tx *gorm.DB, username, email string) (bool, error)
	FindByUsernameOrEmail(ctx context.Context, identity string) (*models.User, error)
	FindByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.User, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error
	DeleteAvatar(ctx context.Context, tx *gorm.DB, userID string) error
	CreateImage(ctx context.Context, tx *gorm.DB, image *models.Image) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return tx.WithContext(ctx).Create(user).Error
}

func (r *userRepository) CreatePromotor(ctx context.Context, tx *gorm.DB, promotor *models.Promotor) error {
	return tx.WithContext(ctx).Create(promotor).Error
}

func (r *userRepository) IdentityExists(ctx context.Context, tx *gorm.DB, username, email string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, identity string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Promotor").
		Preload("Avatar", selectImageName).
		Where("username = ? OR email = ?", identity, identity).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := tx.WithContext(ctx).
		Preload("Promotor").
		Preload("Avatar", selectImageName).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateFields(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error {
	return tx.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteAvatar removes a previous avatar image so a re-upload replaces it.
func (r *userRepository) DeleteAvatar(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Image{}).Error
}

func (r *userRepository) CreateImage(ctx context.Context, tx *gorm.DB, image *models.Image) error {
	return tx.WithContext(ctx).Create(image).Error
}
