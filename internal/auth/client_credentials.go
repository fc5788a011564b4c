package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

// HandleToken handles the token endpoint for the client credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Space separated scopes, a subset of the client's"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if grantType := c.PostForm("grant_type"); grantType != "client_credentials" {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType,
			"Only the client_credentials grant is supported"))
		return
	}

	allowed, err := o.scopeAllowed(c.Request.Context(), c.PostForm("client_id"), c.PostForm("scope"))
	if err != nil {
		log.WithError(err).Error("Failed to look up OAuth2 client")
		c.JSON(http.StatusInternalServerError, models.NewOAuth2Error("server_error", "Client lookup failed"))
		return
	}
	if !allowed {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidScope,
			"Requested scope exceeds the scopes registered for the client"))
		return
	}

	// The server writes both the token and the error responses.
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		log.WithError(err).Error("Failed to write token response")
	}
}
