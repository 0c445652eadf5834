package services

import "rahultripathi/resume-screener/internal/models"

// DefaultWeights is the fixed scoring blend: skills 0.7, experience 0.2,
// education 0.1.
var DefaultWeights = models.Weights{
	Skills:     0.7,
	Experience: 0.2,
	Education:  0.1,
}

// Scorer combines the three component scores into a final score. It exists
// so the arithmetic never depends on the model's own computation and a
// different blend can be swapped in without touching the evaluator.
type Scorer interface {
	FinalScore(skill, experience, education float64, w models.Weights) float64
}

// WeightedScorer computes the weighted sum of the component scores, clamped
// to [0, 100].
type WeightedScorer struct{}

// FinalScore implements Scorer.
func (WeightedScorer) FinalScore(skill, experience, education float64, w models.Weights) float64 {
	total := clampScore(skill)*w.Skills +
		clampScore(experience)*w.Experience +
		clampScore(education)*w.Education
	return clampScore(total)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
