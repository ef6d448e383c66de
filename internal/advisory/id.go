package advisory

import (
	"time"

	"github.com/google/uuid"
)

// IDSource produces advisory identifiers. The clock-derived default is
// unique only within its clock resolution; callers needing global
// uniqueness across concurrent requests inject a collision-free source.
type IDSource interface {
	AdviceID(at time.Time) string
}

// ClockIDSource derives identifiers from the evaluation timestamp
// (adv_YYYYMMDDHHMMSS). Concurrent calls within the same second collide;
// that is an accepted limitation of this source.
type ClockIDSource struct{}

func (ClockIDSource) AdviceID(at time.Time) string {
	return "adv_" + at.Format("20060102150405")
}

// UUIDSource produces collision-free identifiers. The composition root
// wires this one in production.
type UUIDSource struct{}

func (UUIDSource) AdviceID(time.Time) string {
	return "adv_" + uuid.NewString()
}
