package api

import (
	"net/http"
)

// HealthHandler responds with a simple status check.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// HelloHandler handles GET /.
func (s *Server) HelloHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Hello, bird!")
}

// SeekHandler handles GET /-1/seek with a redirect.
func (s *Server) SeekHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", seekLocation)
	w.WriteHeader(http.StatusFound)
}

const seekLocation = "https://www.youtube.com/watch?v=9Gc4QTqslN4"
