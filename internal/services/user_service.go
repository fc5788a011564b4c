package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

// Roles carried in issued access tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type UserService interface {
	// EnsureUser returns the user with the given email, creating it with the
	// given name and role when it does not exist yet.
	EnsureUser(ctx context.Context, email, name, role string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, bool, error)
	GetUserByID(ctx context.Context, id uint) (models.User, bool, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) EnsureUser(ctx context.Context, email, name, role string) (models.User, error) {
	if role != RoleAdmin && role != RoleUser {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	user, found, err := s.GetUserByEmail(ctx, email)
	if err != nil || found {
		return user, err
	}

	user = models.User{Email: email, Name: name, Role: role}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (models.User, bool, error) {
	return s.findUser(ctx, "email = ?", email)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (models.User, bool, error) {
	return s.findUser(ctx, "id = ?", id)
}

func (s *userService) findUser(ctx context.Context, query string, arg any) (models.User, bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return user, true, nil
}
