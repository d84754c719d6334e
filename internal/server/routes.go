package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// registerRoutes sets up all routes on the router. The OAuth endpoints are
// served both bare and under the tenant path segment, matching how Azure AD
// clients address a specific tenant.
func (s *Server) registerRoutes(router *mux.Router) {
	// System
	router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/version", s.handleVersion).Methods(http.MethodGet)

	// OAuth2 + OIDC. Each endpoint answers on the bare path, the short
	// tenant path and the full Azure-style path, so clients built against
	// either convention work unchanged.
	for _, prefix := range []string{"", "/{tenant}/v2.0", "/oauth2/v2.0", "/{tenant}/oauth2/v2.0"} {
		router.HandleFunc(prefix+"/authorize", s.handleAuthorizeGet).Methods(http.MethodGet)
		router.HandleFunc(prefix+"/authorize", s.handleAuthorizePost).Methods(http.MethodPost)
		router.HandleFunc(prefix+"/token", s.handleToken).Methods(http.MethodPost)
	}
	for _, prefix := range []string{"", "/{tenant}/v2.0", "/oidc", "/{tenant}/oidc"} {
		router.HandleFunc(prefix+"/userinfo", s.handleUserinfo).Methods(http.MethodGet, http.MethodPost)
	}
	router.HandleFunc("/.well-known/openid-configuration", s.handleDiscovery).Methods(http.MethodGet)
	router.HandleFunc("/{tenant}/v2.0/.well-known/openid-configuration", s.handleDiscovery).Methods(http.MethodGet)

	// Resource API behind the bearer check
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.requireBearer)
	api.HandleFunc("/sites", s.handleSites).Methods(http.MethodGet)
	api.HandleFunc("/plants", s.handlePlants).Methods(http.MethodGet)
	api.HandleFunc("/protocols/closed", s.handleClosedProtocols).Methods(http.MethodGet)
	api.HandleFunc("/protocols/closed/{id}", s.handleClosedProtocol).Methods(http.MethodGet)
	api.HandleFunc("/protocols/closed/{id}/snapshot", s.handleProtocolSnapshot).Methods(http.MethodGet)
}
