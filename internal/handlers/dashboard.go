package handlers

import (
	"net/http"

	"smartwaste-backend/internal/services"
	"smartwaste-backend/internal/store"
	"smartwaste-backend/pkg/utils"
)

func GetDashboardStats(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := services.ComputeStats(s.List())
		if stats.TotalBins == 0 {
			utils.RespondSuccess(w, http.StatusOK, "No bins available", stats)
			return
		}
		utils.RespondSuccess(w, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
	}
}
