package store

import (
	"errors"
	"log"
	"os"

	json "github.com/goccy/go-json"

	"smartwaste-backend/internal/models"
)

// binDocument mirrors models.Bin with pointer fields so a load can tell a
// missing field from a zero value. Every field is required on disk.
type binDocument struct {
	ID              *int    `json:"id"`
	Location        *string `json:"location"`
	FillLevel       *int    `json:"fillLevel"`
	NeedsCollection *bool   `json:"needsCollection"`
	LastUpdated     *string `json:"lastUpdated"`
}

var errIncompleteRecord = errors.New("bin record is missing required fields")

// Reload replaces the in-memory store with the contents of the data file
// and returns the number of bins loaded. A missing file yields an empty
// store and is not an error; a file that fails to parse is logged and also
// yields an empty store, with the ID counter reset to 1.
func (s *Store) Reload() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked()
	return len(s.bins)
}

// Flush forces a save of the current store and returns the bin count.
func (s *Store) Flush() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveLocked()
	return len(s.bins)
}

// saveLocked writes the full store to the data file as an indented JSON
// array, via a temp file rename so the file is always a whole document.
// Callers must hold the write lock. Failures are logged and swallowed: the
// in-memory store stays the source of truth for the life of the process.
func (s *Store) saveLocked() {
	bins := s.bins
	if bins == nil {
		bins = []models.Bin{}
	}

	data, err := json.MarshalIndent(bins, "", "    ")
	if err != nil {
		log.Printf("❌ Error saving bin data: %v", err)
		return
	}

	tmp := s.file + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		log.Printf("❌ Error saving bin data: %v", err)
		return
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		log.Printf("❌ Error saving bin data: %v", err)
		return
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		log.Printf("❌ Error saving bin data: %v", err)
		return
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		log.Printf("❌ Error saving bin data: %v", err)
		return
	}
	if err := os.Rename(tmp, s.file); err != nil {
		log.Printf("❌ Error saving bin data: %v", err)
	}
}

// loadLocked reads the data file into the store. Any failure, including a
// single record with a missing or mistyped field, resets the store to
// empty; there is no partial recovery. On success the ID counter becomes
// one past the highest ID read back.
func (s *Store) loadLocked() {
	s.bins = nil
	s.nextID = 1

	data, err := os.ReadFile(s.file)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("❌ Error loading bin data: %v", err)
		}
		return
	}

	var docs []binDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Printf("❌ Error loading bin data: %v", err)
		return
	}

	bins := make([]models.Bin, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == nil || doc.Location == nil || doc.FillLevel == nil ||
			doc.NeedsCollection == nil || doc.LastUpdated == nil {
			log.Printf("❌ Error loading bin data: %v", errIncompleteRecord)
			return
		}
		bins = append(bins, models.Bin{
			ID:              *doc.ID,
			Location:        *doc.Location,
			FillLevel:       *doc.FillLevel,
			NeedsCollection: *doc.NeedsCollection,
			LastUpdated:     *doc.LastUpdated,
		})
	}

	s.bins = bins
	for _, bin := range bins {
		if bin.ID >= s.nextID {
			s.nextID = bin.ID + 1
		}
	}
}
