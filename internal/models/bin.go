package models

import "time"

// TimestampFormat is the wire format for every timestamp the API emits:
// UTC with millisecond precision. The persisted data file uses it too.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Timestamp returns the current UTC time in the API wire format.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampFormat)
}

// Bin is a single waste bin record.
type Bin struct {
	ID              int    `json:"id"`
	Location        string `json:"location"`
	FillLevel       int    `json:"fillLevel"`
	NeedsCollection bool   `json:"needsCollection"`
	LastUpdated     string `json:"lastUpdated"`
}

// UpdateBinRequest is the request body for PUT /bins/:id. Nil fields were
// absent from the body and leave the stored value untouched.
type UpdateBinRequest struct {
	Location        *string `json:"location,omitempty"`
	FillLevel       *int    `json:"fillLevel,omitempty"`
	NeedsCollection *bool   `json:"needsCollection,omitempty"`
}

// RouteStop is one entry in the optimized collection route.
type RouteStop struct {
	ID          int    `json:"id"`
	Location    string `json:"location"`
	FillLevel   int    `json:"fillLevel"`
	LastUpdated string `json:"lastUpdated"`
}

// RouteResponse is the payload for GET /optimize-route.
type RouteResponse struct {
	BinsToCollect int         `json:"binsToCollect"`
	Route         []RouteStop `json:"route"`
}

// FillLevelDistribution buckets bins by fill level. The buckets are
// disjoint and cover the whole [0,100] range.
type FillLevelDistribution struct {
	Low      int `json:"low"`      // [0,25)
	Medium   int `json:"medium"`   // [25,50)
	High     int `json:"high"`     // [50,75)
	Critical int `json:"critical"` // [75,100]
}

// DashboardStats is the payload for GET /dashboard/stats.
type DashboardStats struct {
	TotalBins             int                   `json:"totalBins"`
	BinsNeedingCollection int                   `json:"binsNeedingCollection"`
	AverageFillLevel      float64               `json:"averageFillLevel"`
	FillLevelDistribution FillLevelDistribution `json:"fillLevelDistribution"`
}
