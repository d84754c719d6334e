package models

import "time"

// AuthorizationCode is a single-use grant issued by the authorize endpoint.
// It exists in the credential store between creation and the earlier of
// redemption or expiry; redemption removes it unconditionally.
type AuthorizationCode struct {
	Code                string    `json:"code"`
	ClientID            string    `json:"client_id"`
	RedirectURI         string    `json:"redirect_uri"`
	Scope               string    `json:"scope"`
	UserID              string    `json:"user_id"`
	Email               string    `json:"email"`
	DisplayName         string    `json:"display_name"`
	CodeChallenge       string    `json:"code_challenge,omitempty"`
	CodeChallengeMethod string    `json:"code_challenge_method,omitempty"`
	Nonce               string    `json:"nonce,omitempty"`
	ExpiresAt           time.Time `json:"expires_at"`
	CreatedAt           time.Time `json:"created_at"`
}

// RefreshToken is a renewable grant decoupled from the original authorization
// code. Redemption always rotates: the presented token is deleted and a new
// one bound to the same subject/scope/client is stored in its place.
type RefreshToken struct {
	Token       string    `json:"token"`
	ClientID    string    `json:"client_id"`
	Scope       string    `json:"scope"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// TokenResponse is the bearer credential bundle returned by the token
// endpoint. RefreshToken and IDToken are omitted on client_credentials
// grants.
type TokenResponse struct {
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int    `json:"expires_in"`
	ExtExpiresIn int    `json:"ext_expires_in"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
}
