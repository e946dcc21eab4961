package store

import (
	"sync"

	"smartwaste-backend/internal/models"
)

// collectionThreshold is the fill level at or above which a sensor reading
// flags a bin for collection.
const collectionThreshold = 75

// Store holds all bin records in insertion order and owns ID assignment.
// A single write lock covers every mutation together with the file save
// that follows it, so two concurrent requests can neither lose an update
// nor interleave partial writes to the data file. Reads take the read lock
// and never observe a store mid-mutation.
type Store struct {
	mu     sync.RWMutex
	bins   []models.Bin
	nextID int
	file   string
	sensor FillSensor
}

// New creates an empty store backed by the given data file. Call Reload to
// pick up previously persisted bins.
func New(file string, sensor FillSensor) *Store {
	return &Store{
		nextID: 1,
		file:   file,
		sensor: sensor,
	}
}

// CreateBins appends one new bin per location and persists the store once
// for the whole batch. IDs are strictly increasing and never reused, even
// after deletions.
func (s *Store) CreateBins(locations []string) []models.Bin {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]models.Bin, 0, len(locations))
	for _, location := range locations {
		bin := models.Bin{
			ID:          s.nextID,
			Location:    location,
			FillLevel:   0,
			LastUpdated: models.Timestamp(),
		}
		s.nextID++
		s.bins = append(s.bins, bin)
		created = append(created, bin)
	}

	s.saveLocked()
	return created
}

// List returns a copy of all bins in insertion order.
func (s *Store) List() []models.Bin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bins := make([]models.Bin, len(s.bins))
	copy(bins, s.bins)
	return bins
}

// Get returns the bin with the given ID.
func (s *Store) Get(id int) (models.Bin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bin := range s.bins {
		if bin.ID == id {
			return bin, true
		}
	}
	return models.Bin{}, false
}

// Update applies only the fields present in req. The fill level is clamped
// to [0,100]. lastUpdated is refreshed even when req carries no fields at
// all, so an empty PUT body still counts as a touch.
func (s *Store) Update(id int, req models.UpdateBinRequest) (models.Bin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bins {
		if s.bins[i].ID != id {
			continue
		}

		if req.Location != nil {
			s.bins[i].Location = *req.Location
		}
		if req.FillLevel != nil {
			s.bins[i].FillLevel = clampFillLevel(*req.FillLevel)
		}
		if req.NeedsCollection != nil {
			s.bins[i].NeedsCollection = *req.NeedsCollection
		}
		s.bins[i].LastUpdated = models.Timestamp()

		s.saveLocked()
		return s.bins[i], true
	}
	return models.Bin{}, false
}

// Delete removes the bin with the given ID and reports whether a removal
// occurred. The ID is never reassigned.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bins {
		if s.bins[i].ID == id {
			s.bins = append(s.bins[:i], s.bins[i+1:]...)
			s.saveLocked()
			return true
		}
	}
	return false
}

// CollectSensorData takes a fresh sensor reading for every bin, flags the
// ones at or above the collection threshold and persists the result as one
// atomic update. It reports false when the store is empty so the handler
// can signal "no bins" instead of silently updating nothing.
func (s *Store) CollectSensorData() ([]models.Bin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bins) == 0 {
		return nil, false
	}

	for i := range s.bins {
		level := clampFillLevel(s.sensor.ReadFillLevel())
		s.bins[i].FillLevel = level
		s.bins[i].NeedsCollection = level >= collectionThreshold
		s.bins[i].LastUpdated = models.Timestamp()
	}

	s.saveLocked()

	bins := make([]models.Bin, len(s.bins))
	copy(bins, s.bins)
	return bins, true
}

// Count returns the number of bins currently in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bins)
}

func clampFillLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
