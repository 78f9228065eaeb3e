package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventku/eventku-api/internal/models"
	"github.com/eventku/eventku-api/internal/repository"
	"github.com/eventku/eventku-api/pkg/imaging"
	"github.com/eventku/eventku-api/pkg/slugid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string

	// Raw upload bytes for the avatar, nil when no file was sent.
	Avatar      []byte
	AvatarField string
}

type UserService interface {
	UpdateProfile(ctx context.Context, username string, in UpdateProfileInput) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// UpdateProfile overwrites the supplied profile fields and, when an avatar
// upload is present, replaces the stored avatar with its WebP re-encoding.
// Returns the updated user so the caller can re-issue the access token.
func (s *userService) UpdateProfile(ctx context.Context, username string, in UpdateProfileInput) (*models.User, error) {
	var avatar []byte
	if len(in.Avatar) > 0 {
		var err error
		avatar, err = imaging.ToWebP(in.Avatar)
		if err != nil {
			return nil, fmt.Errorf("transcode avatar: %w", err)
		}
	}

	var updated *models.User
	err := s.users.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.users.FindByUsername(ctx, tx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		fields := map[string]any{}
		if in.FirstName != nil {
			fields["first_name"] = *in.FirstName
		}
		if in.LastName != nil {
			fields["last_name"] = *in.LastName
		}
		if len(fields) > 0 {
			if err := s.users.UpdateFields(ctx, tx, user.ID, fields); err != nil {
				return err
			}
		}

		if avatar != nil {
			if err := s.users.DeleteAvatar(ctx, tx, user.ID); err != nil {
				return err
			}
			userID := user.ID
			image := &models.Image{
				ID:     slugid.NewID(),
				Name:   "avatar-" + slugid.WithSuffix(in.AvatarField),
				Blob:   avatar,
				UserID: &userID,
			}
			if err := s.users.CreateImage(ctx, tx, image); err != nil {
				return err
			}
		}

		updated, err = s.users.FindByUsername(ctx, tx, username)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
