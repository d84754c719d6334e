package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/feldmann-io/protosnap/internal/models"
)

func (s *Server) handleSites(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.Catalog.Sites())
}

func (s *Server) handlePlants(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.Catalog.Plants())
}

func (s *Server) handleClosedProtocols(w http.ResponseWriter, r *http.Request) {
	protocols := s.app.Catalog.ClosedProtocols()
	summaries := make([]models.ClosedProtocolSummary, 0, len(protocols))
	for i := range protocols {
		summaries = append(summaries, protocols[i].Public())
	}
	WriteJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleClosedProtocol(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	protocol, ok := s.app.Catalog.ClosedProtocol(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "Protocol not found")
		return
	}
	WriteJSON(w, http.StatusOK, protocol.Public())
}

func (s *Server) handleProtocolSnapshot(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	snapshot, ok := s.app.Catalog.Snapshot(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "Snapshot not found")
		return
	}
	WriteJSON(w, http.StatusOK, snapshot)
}
