package handlers

import (
	"net/http"

	"smartwaste-backend/internal/store"
	"smartwaste-backend/internal/websocket"
	"smartwaste-backend/pkg/utils"
)

// CollectSensorData simulates a sensor sweep over the whole fleet. An
// empty store is a 404: there is nothing to read from.
func CollectSensorData(s *store.Store, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bins, ok := s.CollectSensorData()
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "No bins available")
			return
		}
		hub.Broadcast("sensor_data_collected", bins)

		utils.RespondSuccess(w, http.StatusOK, "Sensor data collected and updated", bins)
	}
}
