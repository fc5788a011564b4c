package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type OAuthClient struct {
	ID         string         `gorm:"primaryKey" json:"client_id"`
	Secret     string         `gorm:"not null" json:"-"` // bcrypt hash, the plain secret is only shown once
	Name       string         `json:"name"`
	Domain     string         `json:"domain"`
	UserID     uint           `json:"user_id"`     // Reference to User model for admin management
	Scopes     string         `json:"scopes"`      // Space-separated list of allowed scopes
	GrantTypes string         `json:"grant_types"` // Space-separated list, only "client_credentials" is served
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// GetID implements oauth2.ClientInfo
func (c *OAuthClient) GetID() string {
	return c.ID
}

// GetSecret implements oauth2.ClientInfo
func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

// GetDomain implements oauth2.ClientInfo
func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

// IsPublic implements oauth2.ClientInfo
func (c *OAuthClient) IsPublic() bool {
	return false
}

// GetUserID implements oauth2.ClientInfo
func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword implements oauth2.ClientPasswordVerifier against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}

// GetScopes returns the space separated scopes the client may request
func (c *OAuthClient) GetScopes() string {
	return c.Scopes
}
