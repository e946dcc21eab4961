package services

import (
	"sort"

	"smartwaste-backend/internal/models"
)

// BuildCollectionRoute selects every bin flagged for collection and orders
// the stops by fill level, fullest first. Ties keep store insertion order
// so the route is stable between calls.
func BuildCollectionRoute(bins []models.Bin) []models.RouteStop {
	route := make([]models.RouteStop, 0)
	for _, bin := range bins {
		if !bin.NeedsCollection {
			continue
		}
		route = append(route, models.RouteStop{
			ID:          bin.ID,
			Location:    bin.Location,
			FillLevel:   bin.FillLevel,
			LastUpdated: bin.LastUpdated,
		})
	}

	sort.SliceStable(route, func(i, j int) bool {
		return route[i].FillLevel > route[j].FillLevel
	})

	return route
}
