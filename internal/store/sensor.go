package store

import "math/rand"

// FillSensor produces simulated fill-level readings for sensor data
// collection. Tests inject a deterministic implementation.
type FillSensor interface {
	// ReadFillLevel returns a fill level in [0, 100].
	ReadFillLevel() int
}

// RandomFillSensor is the production sensor: uniform random readings.
type RandomFillSensor struct{}

func (RandomFillSensor) ReadFillLevel() int {
	return rand.Intn(101)
}
