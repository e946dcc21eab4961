package handlers

import (
	"fmt"
	"net/http"

	"smartwaste-backend/internal/models"
	"smartwaste-backend/internal/services"
	"smartwaste-backend/internal/store"
	"smartwaste-backend/pkg/utils"
)

// OptimizeRoute returns the collection route over all flagged bins. An
// empty route is a success, not an error.
func OptimizeRoute(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route := services.BuildCollectionRoute(s.List())
		if len(route) == 0 {
			utils.RespondSuccess(w, http.StatusOK, "No bins need collection right now", []models.RouteStop{})
			return
		}

		utils.RespondSuccess(w, http.StatusOK,
			fmt.Sprintf("Found %d bins needing collection", len(route)),
			models.RouteResponse{BinsToCollect: len(route), Route: route})
	}
}
