package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the mux router with the public and authenticated routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/users", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/refresh", s.handleRefresh).Methods(http.MethodPost)

	authed := r.PathPrefix("/api/tasks").Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("", s.handleListTasks).Methods(http.MethodGet)
	authed.HandleFunc("", s.handleCreateTask).Methods(http.MethodPost)
	authed.HandleFunc("/{id}", s.handleUpdateTask).Methods(http.MethodPut)
	authed.HandleFunc("/{id}", s.handleDeleteTask).Methods(http.MethodDelete)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
