package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

const (
	defaultClientScopes     = "read write"
	defaultClientGrantTypes = "client_credentials"
)

// NewClient describes an OAuth2 client to register. ID and Secret are
// generated when left empty.
type NewClient struct {
	ID     string
	Secret string
	Name   string
	Domain string
	Scopes string
	UserID uint
}

type ClientService interface {
	// CreateClient stores the client with a hashed secret and returns the plain
	// secret, which is never readable again.
	CreateClient(ctx context.Context, req NewClient) (models.OAuthClient, string, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (models.OAuthClient, bool, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, req NewClient) (models.OAuthClient, string, error) {
	if req.Name == "" {
		return models.OAuthClient{}, "", fmt.Errorf("%w: name is required", ErrValidation)
	}

	secret := req.Secret
	if secret == "" {
		secret = uuid.New().String()
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return models.OAuthClient{}, "", pkgerrors.Wrap(err, "hashing client secret")
	}

	client := models.OAuthClient{
		ID:         req.ID,
		Secret:     string(hashed),
		Name:       req.Name,
		Domain:     req.Domain,
		UserID:     req.UserID,
		Scopes:     req.Scopes,
		GrantTypes: defaultClientGrantTypes,
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.Scopes == "" {
		client.Scopes = defaultClientScopes
	}

	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.OAuthClient{}, "", fmt.Errorf("%w: client %q already exists", ErrValidation, client.ID)
		}
		return models.OAuthClient{}, "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return client, secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (models.OAuthClient, bool, error) {
	var client models.OAuthClient
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OAuthClient{}, false, nil
	}
	if err != nil {
		return models.OAuthClient{}, false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return client, true, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return fmt.Errorf("%w: %w", ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client %q %w", clientID, ErrNotFound)
	}
	return nil
}
