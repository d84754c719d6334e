package oauth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/feldmann-io/protosnap/internal/models"
)

// TokenBuilder signs and validates the JWTs issued by the token endpoint.
// Tokens are HS256 over a shared secret; the issuer is the tenant-scoped
// v2.0 authority derived from the configured base URL.
type TokenBuilder struct {
	secret         []byte
	issuer         string
	tenantID       string
	accessLifetime time.Duration
}

// NewTokenBuilder wires a builder for the given authority.
func NewTokenBuilder(secret, baseURL, tenantID string, accessLifetime time.Duration) *TokenBuilder {
	return &TokenBuilder{
		secret:         []byte(secret),
		issuer:         fmt.Sprintf("%s/%s/v2.0", strings.TrimRight(baseURL, "/"), tenantID),
		tenantID:       tenantID,
		accessLifetime: accessLifetime,
	}
}

// Issuer returns the tenant-scoped authority URL used as the iss claim.
func (b *TokenBuilder) Issuer() string { return b.issuer }

// AccessLifetime returns the configured access token lifetime.
func (b *TokenBuilder) AccessLifetime() time.Duration { return b.accessLifetime }

// FilterScopes strips the OIDC reserved scopes, leaving only the resource
// scopes that belong in the scp claim.
func FilterScopes(scope string) string {
	var kept []string
	for _, s := range strings.Fields(scope) {
		switch s {
		case "openid", "profile", "email", "offline_access":
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, " ")
}

// AccessToken signs an access token for user acting through clientID.
// The scp claim carries delegated scopes; app-only tokens issued via
// client_credentials pass an empty scope and rely on roles.
func (b *TokenBuilder) AccessToken(user models.UserIdentity, clientID, scope, nonce string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   b.issuer,
		"sub":   user.SubjectID,
		"aud":   clientID,
		"oid":   user.SubjectID,
		"tid":   b.tenantID,
		"upn":   user.UPN,
		"email": user.UPN,
		"name":  user.DisplayName,
		"roles": user.Roles,
		"appid": clientID,
		"jti":   NewID(),
		"ver":   "2.0",
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(b.accessLifetime).Unix(),
	}
	if scp := FilterScopes(scope); scp != "" {
		claims["scp"] = scp
	}
	if nonce != "" {
		claims["nonce"] = nonce
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
}

// IDToken signs the OIDC identity token that accompanies user-delegated
// grants when the openid scope was requested.
func (b *TokenBuilder) IDToken(user models.UserIdentity, clientID, nonce string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":                b.issuer,
		"sub":                user.SubjectID,
		"aud":                clientID,
		"tid":                b.tenantID,
		"oid":                user.SubjectID,
		"name":               user.DisplayName,
		"preferred_username": user.UPN,
		"email":              user.UPN,
		"ver":                "2.0",
		"iat":                now.Unix(),
		"nbf":                now.Unix(),
		"exp":                now.Add(b.accessLifetime).Unix(),
	}
	if nonce != "" {
		claims["nonce"] = nonce
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
}

// Verify parses and validates a bearer token, rejecting anything not signed
// with this builder's HMAC key.
func (b *TokenBuilder) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return b.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
