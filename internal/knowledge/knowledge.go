// Package knowledge serves the embedded agronomy knowledge base: crop
// calendars and seasonal notes farmers can cache for offline use.
package knowledge

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nag3003/agrisaarthii/internal/domain"
)

//go:embed calendars.toml
var calendarTOML []byte

// CalendarStage is one row of a crop calendar.
type CalendarStage struct {
	ID      string `toml:"id" json:"id"`
	Stage   string `toml:"stage" json:"stage"`
	Month   string `toml:"month" json:"month"`
	Actions string `toml:"actions" json:"actions"`
	Warning string `toml:"warning" json:"warning"`
}

type cropCalendar struct {
	Name   string          `toml:"name"`
	Stages []CalendarStage `toml:"stage"`
}

type calendarFile struct {
	Crops []cropCalendar `toml:"crop"`
}

// Base is the parsed knowledge base.
type Base struct {
	calendars map[string][]CalendarStage
}

// Load parses the embedded calendar document.
func Load() (*Base, error) {
	var file calendarFile
	if err := toml.Unmarshal(calendarTOML, &file); err != nil {
		return nil, fmt.Errorf("parse crop calendars: %w", err)
	}

	b := &Base{calendars: make(map[string][]CalendarStage, len(file.Crops))}
	for _, c := range file.Crops {
		b.calendars[c.Name] = c.Stages
	}
	return b, nil
}

// CropCalendar returns the stage calendar for a crop, if one exists.
func (b *Base) CropCalendar(crop string) ([]CalendarStage, bool) {
	stages, ok := b.calendars[crop]
	return stages, ok
}

// Crops lists the crops the base has calendars for.
func (b *Base) Crops() []string {
	names := make([]string, 0, len(b.calendars))
	for name := range b.calendars {
		names = append(names, name)
	}
	return names
}

// SeasonalAdvice renders the cached on-device advice line for a crop in a
// season.
func (b *Base) SeasonalAdvice(season domain.Season, crop string) string {
	return fmt.Sprintf("General advice for %s in %s: Ensure proper drainage and monitor for fungal infections due to high humidity.", crop, season)
}
