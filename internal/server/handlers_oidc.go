package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/feldmann-io/protosnap/internal/oauth"
)

// handleDiscovery serves the OIDC discovery document. The issuer and all
// endpoint URLs are templated from the configured base URL and the tenant in
// the request path, falling back to the configured tenant on the bare route.
func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	tenant := mux.Vars(r)["tenant"]
	if tenant == "" {
		tenant = s.app.Config.Auth.TenantID
	}
	base := strings.TrimRight(s.app.Config.Auth.BaseURL, "/")
	authority := fmt.Sprintf("%s/%s", base, tenant)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"issuer":                                authority + "/v2.0",
		"authorization_endpoint":                authority + "/oauth2/v2.0/authorize",
		"token_endpoint":                        authority + "/oauth2/v2.0/token",
		"userinfo_endpoint":                     authority + "/oidc/userinfo",
		"response_types_supported":              []string{"code"},
		"response_modes_supported":              []string{"query"},
		"grant_types_supported":                 []string{"authorization_code", "refresh_token", "client_credentials"},
		"subject_types_supported":               []string{"pairwise"},
		"id_token_signing_alg_values_supported": []string{"HS256"},
		"code_challenge_methods_supported":      []string{"S256", "plain"},
		"token_endpoint_auth_methods_supported": []string{"client_secret_post", "client_secret_basic"},
		"scopes_supported":                      []string{"openid", "profile", "email", "offline_access", "protocol.read"},
		"claims_supported": []string{
			"sub", "iss", "aud", "exp", "iat", "nonce",
			"name", "preferred_username", "email", "oid", "tid", "upn", "roles", "scp",
		},
		"tenant_region_scope": "EU",
		"cloud_instance_name": "microsoftonline.com",
	})
}

// handleUserinfo returns the claim subset for the presented bearer token.
func (s *Server) handleUserinfo(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		s.writeBearerChallenge(w, r, "Authorization header missing or not a Bearer token.")
		return
	}

	claims, err := s.app.Tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		s.logger.Info().Err(err).Msg("Userinfo token rejected")
		WriteOAuthError(w, r, oauth.InvalidToken("The access token is invalid or expired."))
		return
	}

	info := map[string]interface{}{"sub": claims["sub"]}
	for _, key := range []string{"name", "email", "oid", "tid"} {
		if v, ok := claims[key]; ok {
			info[key] = v
		}
	}
	if v, ok := claims["upn"]; ok {
		info["preferred_username"] = v
	}

	WriteJSON(w, http.StatusOK, info)
}
