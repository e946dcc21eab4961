package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"smartwaste-backend/internal/models"
	"smartwaste-backend/internal/store"
	"smartwaste-backend/internal/websocket"
	"smartwaste-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// parseBinID reads the {id} URL parameter. On failure it writes a 400 and
// reports false.
func parseBinID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Bin ID must be a number")
		return 0, false
	}
	return id, true
}

func GetBins(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bins := s.List()
		if len(bins) == 0 {
			utils.RespondSuccess(w, http.StatusOK, "No bins available", []models.Bin{})
			return
		}
		utils.RespondSuccess(w, http.StatusOK, fmt.Sprintf("Retrieved %d bins", len(bins)), bins)
	}
}

func GetBin(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseBinID(w, r)
		if !ok {
			return
		}

		bin, found := s.Get(id)
		if !found {
			utils.RespondError(w, http.StatusNotFound, fmt.Sprintf("Bin with ID %d not found", id))
			return
		}
		utils.RespondSuccess(w, http.StatusOK, fmt.Sprintf("Retrieved bin with ID %d", id), bin)
	}
}

// CreateBins accepts either a single bin object or an array of them. Every
// element is validated before any bin is created, so a bad element leaves
// the store untouched.
func CreateBins(s *store.Store, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		items, err := decodeCreateRequests(body)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Error: "+err.Error())
			return
		}

		locations := make([]string, 0, len(items))
		for _, item := range items {
			location, ok := item["location"].(string)
			if !ok || strings.TrimSpace(location) == "" {
				utils.RespondError(w, http.StatusBadRequest, "Each bin must have a location string")
				return
			}
			locations = append(locations, location)
		}

		created := s.CreateBins(locations)
		hub.Broadcast("bins_created", created)

		utils.RespondSuccess(w, http.StatusCreated,
			fmt.Sprintf("%d bins added successfully", len(created)), created)
	}
}

// decodeCreateRequests handles the two body shapes clients send to
// POST /bins: one bin object, or an array of them.
func decodeCreateRequests(body []byte) ([]map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []map[string]interface{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var item map[string]interface{}
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, err
	}
	return []map[string]interface{}{item}, nil
}

func UpdateBin(s *store.Store, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseBinID(w, r)
		if !ok {
			return
		}

		var req models.UpdateBinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Error: "+err.Error())
			return
		}

		updated, found := s.Update(id, req)
		if !found {
			utils.RespondError(w, http.StatusNotFound, fmt.Sprintf("Bin with ID %d not found", id))
			return
		}
		hub.Broadcast("bin_updated", updated)

		utils.RespondSuccess(w, http.StatusOK,
			fmt.Sprintf("Bin with ID %d updated successfully", id), updated)
	}
}

func DeleteBin(s *store.Store, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseBinID(w, r)
		if !ok {
			return
		}

		if !s.Delete(id) {
			utils.RespondError(w, http.StatusNotFound, fmt.Sprintf("Bin with ID %d not found", id))
			return
		}
		hub.Broadcast("bin_deleted", map[string]int{"id": id})

		utils.RespondSuccess(w, http.StatusOK,
			fmt.Sprintf("Bin with ID %d deleted successfully", id), nil)
	}
}
