package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

// OAuthService issues JWT access tokens to registered clients through the
// client credentials grant.
type OAuthService struct {
	server  *server.Server
	clients *GormClientStore
}

func NewOAuthService(db *gorm.DB, users services.UserService, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(manage.DefaultClientTokenCfg)
	manager.MapAccessGenerate(NewCustomJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS512, users))

	manager.MustTokenStorage(NewGormTokenStore(db), nil)
	clients := NewGormClientStore(db)
	manager.MapClientStorage(clients)

	srv := server.NewDefaultServer(manager)
	srv.SetAllowGetAccessRequest(false)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)
	srv.SetInternalErrorHandler(func(err error) *oauth2errors.Response {
		log.WithError(err).Error("OAuth2 internal error")
		return nil
	})

	return &OAuthService{server: srv, clients: clients}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}

// scopeAllowed reports whether every requested scope is registered for the
// client. Unknown clients pass so the server answers with invalid_client.
func (o *OAuthService) scopeAllowed(ctx context.Context, clientID, scope string) (bool, error) {
	if scope == "" {
		return true, nil
	}

	info, err := o.clients.GetByID(ctx, clientID)
	if errors.Is(err, oauth2errors.ErrInvalidClient) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	client, ok := info.(interface{ GetScopes() string })
	if !ok {
		return false, nil
	}
	allowed := strings.Fields(client.GetScopes())
	for _, requested := range strings.Fields(scope) {
		if !contains(allowed, requested) {
			return false, nil
		}
	}
	return true, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
