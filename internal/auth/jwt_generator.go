package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

// CustomJWTAccessGenerate generates JWT access tokens carrying the owning
// user's id ("uid") and role ("role") next to the standard claims.
type CustomJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	Users        services.UserService
}

// NewCustomJWTAccessGenerate creates a new custom JWT access token generator
func NewCustomJWTAccessGenerate(key []byte, method jwt.SigningMethod, users services.UserService) *CustomJWTAccessGenerate {
	return &CustomJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		Users:        users,
	}
}

// Token implements oauth2.AccessGenerate
func (g *CustomJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud": data.Client.GetID(),
		"iat": createdAt.Unix(),
		"exp": createdAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}

	// Client credentials carry no user, the client's owner is used instead.
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	if userID == "" {
		return "", "", fmt.Errorf("cannot generate token: no user ID available")
	}
	claims["uid"] = userID

	role, err := g.userRole(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user role: %w", err)
	}
	claims["role"] = role

	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"id":  access,
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

func (g *CustomJWTAccessGenerate) userRole(ctx context.Context, userIDStr string) (string, error) {
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid user ID format: %w", err)
	}

	user, found, err := g.Users.GetUserByID(ctx, uint(userID))
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("user with ID %d not found", userID)
	}
	if user.Role == "" {
		return services.RoleUser, nil
	}
	return user.Role, nil
}
