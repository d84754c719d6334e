package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bearerToken obtains a valid access token via the client_credentials grant.
func bearerToken(t *testing.T, srv *Server) string {
	t.Helper()
	status, body := postToken(t, srv, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"catalog-tests"},
		"client_secret": {"anything"},
		"scope":         {"protocol.read"},
	})
	require.Equal(t, http.StatusOK, status)
	return body["access_token"].(string)
}

func getList(t *testing.T, srv *Server, path, bearer string) (int, []map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var body []map[string]interface{}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec.Code, body
}

func TestCatalogRequiresBearer(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/v1/sites",
		"/api/v1/plants",
		"/api/v1/protocols/closed",
		"/api/v1/protocols/closed/1",
		"/api/v1/protocols/closed/1/snapshot",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token", path)
	}
}

func TestCatalogRejectsGarbageToken(t *testing.T) {
	srv := newTestServer(t)

	status, _ := getList(t, srv, "/api/v1/sites", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSitesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := bearerToken(t, srv)

	status, sites := getList(t, srv, "/api/v1/sites", token)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, sites, 3)
	assert.Equal(t, "Berlin Manufacturing Hub", sites[0]["name"])
	assert.Equal(t, "BMH", sites[0]["abbreviationName"])
}

func TestPlantsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := bearerToken(t, srv)

	status, plants := getList(t, srv, "/api/v1/plants", token)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, plants, 4)
	assert.Equal(t, "ALA-001", plants[0]["code"])
}

func TestClosedProtocolsPublicShape(t *testing.T) {
	srv := newTestServer(t)
	token := bearerToken(t, srv)

	status, protocols := getList(t, srv, "/api/v1/protocols/closed", token)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, protocols, 5)

	first := protocols[0]
	assert.Equal(t, "Safety Protocol Template v2.1", first["template"])
	_, hasSiteID := first["siteId"]
	assert.False(t, hasSiteID, "internal grouping fields must not leak")
	_, hasBasedOn := first["basedOn"]
	assert.False(t, hasBasedOn)
}

func TestSingleProtocolAndMiss(t *testing.T) {
	srv := newTestServer(t)
	token := bearerToken(t, srv)

	status, body := getJSON(t, srv, "/api/v1/protocols/closed/3", token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Paint Quality Audit - February", body["name"])

	status, _ = getJSON(t, srv, "/api/v1/protocols/closed/999", token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSnapshotEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := bearerToken(t, srv)

	status, snap := getJSON(t, srv, "/api/v1/protocols/closed/1/snapshot", token)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "1", snap["protocolId"])
	templateName, ok := snap["templateName"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Monatliche Sicherheitsinspektion", templateName["de"])

	topics, ok := snap["topics"].([]interface{})
	require.True(t, ok)
	assert.Len(t, topics, 2)

	status, _ = getJSON(t, srv, "/api/v1/protocols/closed/999/snapshot", token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthAndVersionUnauthenticated(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/api/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, version := getJSON(t, srv, "/api/version", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, version["version"])
}
