package services

import (
	"math"

	"smartwaste-backend/internal/models"
)

// ComputeStats aggregates the dashboard view of the whole store. The
// average fill level is rounded to one decimal place; an empty store
// yields 0.0 rather than dividing by zero.
func ComputeStats(bins []models.Bin) models.DashboardStats {
	stats := models.DashboardStats{TotalBins: len(bins)}
	if len(bins) == 0 {
		return stats
	}

	totalFill := 0
	for _, bin := range bins {
		totalFill += bin.FillLevel
		if bin.NeedsCollection {
			stats.BinsNeedingCollection++
		}

		switch {
		case bin.FillLevel < 25:
			stats.FillLevelDistribution.Low++
		case bin.FillLevel < 50:
			stats.FillLevelDistribution.Medium++
		case bin.FillLevel < 75:
			stats.FillLevelDistribution.High++
		default:
			stats.FillLevelDistribution.Critical++
		}
	}

	average := float64(totalFill) / float64(len(bins))
	stats.AverageFillLevel = math.Round(average*10) / 10

	return stats
}
