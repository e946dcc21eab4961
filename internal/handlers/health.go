package handlers

import (
	"net/http"

	"smartwaste-backend/internal/models"
	"smartwaste-backend/pkg/utils"
)

const apiVersion = "1.0.0"

// HealthCheck reports service liveness. Unlike the other endpoints it
// returns a bare object, not the standard envelope.
func HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": models.Timestamp(),
			"version":   apiVersion,
		})
	}
}
