// Package confidence maps extraction confidence scores to display
// bands. Bands drive badge styling only; records are never filtered or
// excluded by confidence.
package confidence

// Band is the display classification of a confidence score.
type Band string

const (
	High   Band = "high"
	Medium Band = "medium"
	Low    Band = "low"
)

const (
	highThreshold   = 0.8
	mediumThreshold = 0.6
)

// Classify maps a score to its band. Scores outside [0,1] are accepted
// as-is, no clamping: the same thresholds apply.
func Classify(score float64) Band {
	switch {
	case score >= highThreshold:
		return High
	case score >= mediumThreshold:
		return Medium
	default:
		return Low
	}
}
