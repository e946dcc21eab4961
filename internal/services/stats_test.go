package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartwaste-backend/internal/models"
)

func binsWithFillLevels(levels ...int) []models.Bin {
	bins := make([]models.Bin, len(levels))
	for i, level := range levels {
		bins[i] = models.Bin{ID: i + 1, Location: "loc", FillLevel: level}
	}
	return bins
}

func TestComputeStats_EmptyStore(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalBins)
	assert.Equal(t, 0, stats.BinsNeedingCollection)
	assert.Equal(t, 0.0, stats.AverageFillLevel)
	assert.Equal(t, models.FillLevelDistribution{}, stats.FillLevelDistribution)
}

func TestComputeStats_Distribution(t *testing.T) {
	stats := ComputeStats(binsWithFillLevels(10, 30, 60, 90))

	assert.Equal(t, 4, stats.TotalBins)
	assert.Equal(t, 47.5, stats.AverageFillLevel)
	assert.Equal(t, models.FillLevelDistribution{Low: 1, Medium: 1, High: 1, Critical: 1},
		stats.FillLevelDistribution)
}

func TestComputeStats_BucketBoundaries(t *testing.T) {
	tests := []struct {
		level int
		want  models.FillLevelDistribution
	}{
		{0, models.FillLevelDistribution{Low: 1}},
		{24, models.FillLevelDistribution{Low: 1}},
		{25, models.FillLevelDistribution{Medium: 1}},
		{49, models.FillLevelDistribution{Medium: 1}},
		{50, models.FillLevelDistribution{High: 1}},
		{74, models.FillLevelDistribution{High: 1}},
		{75, models.FillLevelDistribution{Critical: 1}},
		{100, models.FillLevelDistribution{Critical: 1}},
	}
	for _, tt := range tests {
		stats := ComputeStats(binsWithFillLevels(tt.level))
		assert.Equal(t, tt.want, stats.FillLevelDistribution, "fill level %d", tt.level)
	}
}

func TestComputeStats_BucketsSumToTotal(t *testing.T) {
	bins := binsWithFillLevels(0, 5, 24, 25, 49, 50, 74, 75, 99, 100)
	stats := ComputeStats(bins)

	d := stats.FillLevelDistribution
	assert.Equal(t, stats.TotalBins, d.Low+d.Medium+d.High+d.Critical)
}

func TestComputeStats_CountsCollectionFlags(t *testing.T) {
	bins := binsWithFillLevels(80, 90, 10)
	bins[0].NeedsCollection = true
	bins[1].NeedsCollection = true

	stats := ComputeStats(bins)
	assert.Equal(t, 2, stats.BinsNeedingCollection)
}

func TestComputeStats_AverageRoundedToOneDecimal(t *testing.T) {
	// (10 + 11 + 11) / 3 = 10.666... -> 10.7
	stats := ComputeStats(binsWithFillLevels(10, 11, 11))
	assert.Equal(t, 10.7, stats.AverageFillLevel)
}
