package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldmann-io/protosnap/internal/oauth"
)

func getJSON(t *testing.T, srv *Server, path, bearer string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestDiscoveryDocument(t *testing.T) {
	srv := newTestServer(t)
	tenant := srv.app.Config.Auth.TenantID

	status, body := getJSON(t, srv, "/"+tenant+"/v2.0/.well-known/openid-configuration", "")
	require.Equal(t, http.StatusOK, status)

	base := "http://localhost:8080/" + tenant
	assert.Equal(t, base+"/v2.0", body["issuer"])
	assert.Equal(t, base+"/oauth2/v2.0/authorize", body["authorization_endpoint"])
	assert.Equal(t, base+"/oauth2/v2.0/token", body["token_endpoint"])
	assert.Equal(t, base+"/oidc/userinfo", body["userinfo_endpoint"])

	grants, ok := body["grant_types_supported"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, grants, "authorization_code")
	assert.Contains(t, grants, "client_credentials")
}

func TestDiscoveryBareRouteUsesConfiguredTenant(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/.well-known/openid-configuration", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["issuer"], srv.app.Config.Auth.TenantID)
}

func TestDiscoveryReflectsRequestedTenant(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/some-other-tenant/v2.0/.well-known/openid-configuration", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "http://localhost:8080/some-other-tenant/v2.0", body["issuer"])
}

func TestUserinfoRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	code := signIn(t, srv, "jane.smith@contoso.com", nil)
	status, tokens := postToken(t, srv, url.Values{"grant_type": {"authorization_code"}, "code": {code}})
	require.Equal(t, http.StatusOK, status)

	status, info := getJSON(t, srv, "/oidc/userinfo", tokens["access_token"].(string))
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "Jane Smith", info["name"])
	assert.Equal(t, "jane.smith@contoso.com", info["preferred_username"])
	assert.Equal(t, info["sub"], info["oid"])
	assert.NotEmpty(t, info["tid"])
}

func TestUserinfoRequiresBearer(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/oidc/userinfo", "")
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_token", body["error"])
}

func TestUserinfoRejectsExpiredToken(t *testing.T) {
	srv := newTestServer(t)

	expired := oauth.NewTokenBuilder(srv.app.Config.Auth.JWTSecret,
		srv.app.Config.Auth.BaseURL, srv.app.Config.Auth.TenantID, -time.Minute)
	token, err := expired.AccessToken(srv.app.Directory.Resolve("jane.smith@contoso.com"),
		"swagger-editor", "protocol.read", "")
	require.NoError(t, err)

	status, body := getJSON(t, srv, "/oidc/userinfo", token)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body["error_description"], "AADSTS500133")
}

func TestUserinfoRejectsTamperedToken(t *testing.T) {
	srv := newTestServer(t)
	code := signIn(t, srv, "jane.smith@contoso.com", nil)
	_, tokens := postToken(t, srv, url.Values{"grant_type": {"authorization_code"}, "code": {code}})

	token := tokens["access_token"].(string)
	tampered := token[:len(token)-4] + "AAAA"

	status, _ := getJSON(t, srv, "/oidc/userinfo", tampered)
	assert.Equal(t, http.StatusUnauthorized, status)
}
