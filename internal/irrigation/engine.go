// Package irrigation decides whether the field motor should run. It only
// decides — issuing the physical switch command belongs to the actuation
// sink.
package irrigation

import "fmt"

// Action is the motor directive produced by the engine.
type Action string

const (
	TurnOn  Action = "TURN_ON"
	TurnOff Action = "TURN_OFF"
	StayOff Action = "STAY_OFF"
)

// Thresholds for the decision cascade. Moisture exactly at either bound
// falls into the adequate band.
const (
	dryMoisturePct       = 30
	saturatedMoisturePct = 80
	rainDeferralPct      = 60
)

// Decision is the engine's output: the motor action plus a farmer-facing
// message suitable for a voice alert.
type Decision struct {
	Action  Action `json:"motor_status"`
	Message string `json:"voice_alert"`

	// RainDeferred marks the dry-soil branch that stayed off because rain
	// is expected; callers surface the cost savings note for it.
	RainDeferred bool `json:"-"`
}

// Decide evaluates the moisture/forecast cascade. Comparisons are strict on
// both thresholds: moisture 30 and 80 are adequate. Inputs outside 0-100
// are evaluated as-is — validation is the caller's job.
//
// The crop argument names the farmer's primary crop in the adequate-band
// message; it may be empty.
func Decide(moisturePct, rainProbPct float64, crop string) Decision {
	switch {
	case moisturePct < dryMoisturePct && rainProbPct > rainDeferralPct:
		return Decision{
			Action:       StayOff,
			Message:      "Soil is dry, but heavy rain is expected soon. Motor NOT started to save water and electricity.",
			RainDeferred: true,
		}
	case moisturePct < dryMoisturePct:
		return Decision{
			Action:  TurnOn,
			Message: fmt.Sprintf("Soil moisture is low at %g%%. Starting motor for 30 minutes.", moisturePct),
		}
	case moisturePct > saturatedMoisturePct:
		return Decision{
			Action:  TurnOff,
			Message: "Soil is saturated. Motor stopped to prevent waterlogging.",
		}
	default:
		if crop == "" {
			crop = "your"
		} else {
			crop = "your " + crop
		}
		return Decision{
			Action:  StayOff,
			Message: fmt.Sprintf("Soil moisture is at %g%%. This is perfect for %s crop.", moisturePct, crop),
		}
	}
}
