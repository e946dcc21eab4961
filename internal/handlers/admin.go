package handlers

import (
	"fmt"
	"net/http"

	"smartwaste-backend/internal/store"
	"smartwaste-backend/internal/websocket"
	"smartwaste-backend/pkg/utils"
)

// LoadData replaces the in-memory store with the persisted file. A load
// failure resets the store to empty and is still reported as a success
// with a zero count; the details go to the server log only.
func LoadData(s *store.Store, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := s.Reload()
		hub.Broadcast("bins_reloaded", s.List())

		utils.RespondSuccess(w, http.StatusOK,
			fmt.Sprintf("Successfully loaded %d bins from file", count), nil)
	}
}

// SaveData forces a write of the current store to the data file.
func SaveData(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := s.Flush()

		utils.RespondSuccess(w, http.StatusOK,
			fmt.Sprintf("Successfully saved %d bins to file", count), nil)
	}
}
