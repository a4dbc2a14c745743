package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/lunch/pkg/domain"
)

// addRequest is the body of add restaurant request
type addRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listRestaurantsHandler returns all restaurants, or restaurants of the category if set in query
func (s *Server) listRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.Restaurant
		err  error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		list, err = s.store.ListByCategory(r.Context(), category)
	} else {
		list, err = s.store.List(r.Context())
	}
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Restaurant{}
	}
	renderJSON(w, r, http.StatusOK, list)
}

// addRestaurantHandler creates a restaurant from JSON body
func (s *Server) addRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	restaurant, err := s.store.Add(r.Context(), req.Name, req.Category)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	log.Printf("[INFO] added restaurant %q (%s)", restaurant.Name, restaurant.Category)
	renderJSON(w, r, http.StatusCreated, restaurant)
}

// deleteRestaurantHandler removes a restaurant, missing one is not an error
func (s *Server) deleteRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		renderStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rollHandler picks a restaurant of the category
func (s *Server) rollHandler(w http.ResponseWriter, r *http.Request) {
	restaurant, err := s.store.Roll(r.Context(), r.PathValue("category"))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, restaurant)
}

// historyHandler returns recent roll results, most recent first
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	sels, err := s.store.Recent(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	if sels == nil {
		sels = []domain.Selection{}
	}
	renderJSON(w, r, http.StatusOK, sels)
}
