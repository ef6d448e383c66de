package sensor

import (
	"testing"
	"time"
)

func TestRegistryLatest(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Latest("f-1", "soil_moisture", 0); ok {
		t.Fatal("empty registry should have no reading")
	}

	now := time.Now()
	reg.Record(Reading{FarmerID: "f-1", Type: "soil_moisture", Value: 25, At: now.Add(-time.Minute)})
	reg.Record(Reading{FarmerID: "f-1", Type: "soil_moisture", Value: 28, At: now})
	reg.Record(Reading{FarmerID: "f-1", Type: "air_temp", Value: 31, At: now})
	reg.Record(Reading{FarmerID: "f-2", Type: "soil_moisture", Value: 60, At: now})

	got, ok := reg.Latest("f-1", "soil_moisture", 0)
	if !ok || got.Value != 28 {
		t.Errorf("latest = %+v ok=%v, want value 28", got, ok)
	}

	got, ok = reg.Latest("f-2", "soil_moisture", 0)
	if !ok || got.Value != 60 {
		t.Errorf("farmer isolation broken: %+v ok=%v", got, ok)
	}

	if _, ok := reg.Latest("f-1", "ph", 0); ok {
		t.Error("unknown sensor type should have no reading")
	}
}

func TestRegistryStaleness(t *testing.T) {
	reg := NewRegistry()
	reg.Record(Reading{FarmerID: "f-1", Type: "soil_moisture", Value: 25, At: time.Now().Add(-time.Hour)})

	if _, ok := reg.Latest("f-1", "soil_moisture", 10*time.Minute); ok {
		t.Error("stale reading should not be returned")
	}
	if _, ok := reg.Latest("f-1", "soil_moisture", 2*time.Hour); !ok {
		t.Error("fresh-enough reading should be returned")
	}
	if _, ok := reg.Latest("f-1", "soil_moisture", 0); !ok {
		t.Error("maxAge 0 disables staleness check")
	}
}

func TestRegistryForget(t *testing.T) {
	reg := NewRegistry()
	reg.Record(Reading{FarmerID: "f-1", Type: "soil_moisture", Value: 25, At: time.Now()})
	reg.Forget("f-1")
	if _, ok := reg.Latest("f-1", "soil_moisture", 0); ok {
		t.Error("forgotten farmer should have no readings")
	}
}
