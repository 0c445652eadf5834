package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedScorerFinalScore(t *testing.T) {
	scorer := WeightedScorer{}

	tests := []struct {
		name            string
		skill, exp, edu float64
		expected        float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"all perfect", 100, 100, 100, 100},
		{"weighted blend", 80, 50, 100, 76}, // 80*0.7 + 50*0.2 + 100*0.1
		{"negative clamped to zero", -40, 0, 0, 0},
		{"overflow clamped to hundred", 900, 100, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.FinalScore(tt.skill, tt.exp, tt.edu, DefaultWeights)
			assert.InDelta(t, tt.expected, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	sum := DefaultWeights.Skills + DefaultWeights.Experience + DefaultWeights.Education
	assert.InDelta(t, 1.0, sum, 0.0001)
}
