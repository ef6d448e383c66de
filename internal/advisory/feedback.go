package advisory

// Confidence signals produced when a farmer reports an outcome. Placeholder
// values for a future learning system; fixed contract constants for this
// version.
const (
	signalActionTaken  = 0.96
	signalActionPassed = 0.94
)

// OutcomeSignal folds a farmer-reported outcome into the updated system
// confidence signal. It depends only on whether the advised action was
// taken; every other argument of outcome recording is retention-only.
func OutcomeSignal(actionTaken bool) float64 {
	if actionTaken {
		return signalActionTaken
	}
	return signalActionPassed
}
