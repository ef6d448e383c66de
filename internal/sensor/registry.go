// Package sensor receives field-sensor readings over WebSocket and keeps
// the latest reading per farmer so context assembly can cite live moisture.
package sensor

import (
	"sync"
	"time"
)

// Reading is one field-sensor measurement.
type Reading struct {
	FarmerID string    `json:"farmer_id"`
	Type     string    `json:"sensor"`
	Value    float64   `json:"value"`
	At       time.Time `json:"timestamp"`
}

// Registry holds the most recent reading per farmer and sensor type.
// Core decision functions never touch it; callers read a value out and pass
// it into the pure pipeline.
type Registry struct {
	mu     sync.RWMutex
	latest map[string]map[string]Reading
}

// NewRegistry creates an empty reading registry.
func NewRegistry() *Registry {
	return &Registry{latest: make(map[string]map[string]Reading)}
}

// Record stores a reading as the latest for its farmer and sensor type.
func (r *Registry) Record(reading Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byType, ok := r.latest[reading.FarmerID]
	if !ok {
		byType = make(map[string]Reading)
		r.latest[reading.FarmerID] = byType
	}
	byType[reading.Type] = reading
}

// Latest returns the newest reading of the given type for a farmer, if one
// exists no older than maxAge. maxAge <= 0 disables the staleness check.
func (r *Registry) Latest(farmerID, sensorType string, maxAge time.Duration) (Reading, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reading, ok := r.latest[farmerID][sensorType]
	if !ok {
		return Reading{}, false
	}
	if maxAge > 0 && time.Since(reading.At) > maxAge {
		return Reading{}, false
	}
	return reading, true
}

// Forget drops all readings for a farmer.
func (r *Registry) Forget(farmerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.latest, farmerID)
}
