package domain

import "fmt"

// LearningStats summarizes how often a farmer acted on past advisories.
type LearningStats struct {
	TotalAdvisories int `json:"total_advisories"`
	ActionsFollowed int `json:"actions_followed"`
}

// SuccessRate renders the followed/total ratio as a percentage string.
// Returns "0%" when no advisories exist.
func (s LearningStats) SuccessRate() string {
	if s.TotalAdvisories == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", s.ActionsFollowed*100/s.TotalAdvisories)
}
