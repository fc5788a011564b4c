package models

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of successful calls that carry no entity
type MessageResponse struct {
	Message string `json:"message"`
}

// OAuth2 error codes (RFC 6749 / RFC 6750)
const (
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrInvalidToken         = "invalid_token"
	ErrAuthorizationNeeded  = "authorization_required"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrInsufficientScope    = "insufficient_scope"
	ErrInvalidScope         = "invalid_scope"
)

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{
		Error:            code,
		ErrorDescription: description,
	}
}
