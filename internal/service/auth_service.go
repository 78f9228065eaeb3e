package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventku/eventku-api/internal/models"
	"github.com/eventku/eventku-api/internal/repository"
	"github.com/eventku/eventku-api/pkg/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrIdentityTaken      = errors.New("username or email already registered")
)

type LoginResult struct {
	AccessToken string
	User        *models.User
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string

	// Non-empty when the account should also own a promotor profile.
	PromotorName string
}

type AuthService interface {
	Login(ctx context.Context, identity, password string) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	signer *token.Signer
}

func NewAuthService(users repository.UserRepository, signer *token.Signer) AuthService {
	return &authService{users: users, signer: signer}
}

// Login authenticates by username or email and issues an access token.
func (s *authService) Login(ctx context.Context, identity, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	var promotorID string
	if user.Promotor != nil {
		promotorID = user.Promotor.ID
	}

	accessToken, err := s.signer.Sign(user.ID, user.Username, promotorID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: accessToken, User: user}, nil
}

// Register creates the user row, and a promotor profile when a promotor name
// was supplied, as one atomic unit.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}

	err = s.users.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.users.IdentityExists(ctx, tx, in.Username, in.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrIdentityTaken
		}

		if err := s.users.Create(ctx, tx, user); err != nil {
			return err
		}

		if in.PromotorName != "" {
			promotor := &models.Promotor{
				ID:           uuid.NewString(),
				UserID:       user.ID,
				PromotorName: in.PromotorName,
			}
			if err := s.users.CreatePromotor(ctx, tx, promotor); err != nil {
				return err
			}
			user.Promotor = promotor
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
