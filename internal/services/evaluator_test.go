package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rahultripathi/resume-screener/internal/models"
)

func testCandidate() *models.CandidateRecord {
	return &models.CandidateRecord{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Skills:     []string{"Python", "SQL"},
		Experience: "3 years",
		Education:  "B.Sc. Computer Science",
	}
}

func TestEvaluatorRecomputesFinalScore(t *testing.T) {
	// The model reports a bogus finalScore; the local scorer must win.
	llm := &fakeLLM{response: `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"candidateSkills": ["Python", "SQL"],
		"requiredSkills": ["Python", "SQL", "Go"],
		"matchedSkills": ["Python", "SQL"],
		"missingSkills": ["Go"],
		"skillScore": 80,
		"experience": "3 years",
		"experienceScore": 50,
		"education": "B.Sc. Computer Science",
		"educationScore": 100,
		"finalScore": 3,
		"feedback": "Solid fit.",
		"weights": {"skills": 0.5, "experience": 0.5, "education": 0.0}
	}`}
	evaluator := NewEvaluatorService(llm, WeightedScorer{})

	eval, err := evaluator.Evaluate(context.Background(), testCandidate(), models.DefaultJobProfile())
	require.NoError(t, err)

	// 80*0.7 + 50*0.2 + 100*0.1
	assert.InDelta(t, 76.0, eval.FinalScore, 0.0001)
	// Model-supplied weights are overwritten with the fixed blend.
	assert.Equal(t, DefaultWeights, eval.Weights)
	assert.Equal(t, []string{"Go"}, eval.MissingSkills)
	assert.Equal(t, "Solid fit.", eval.Feedback)
}

func TestEvaluatorClampsComponentScores(t *testing.T) {
	llm := &fakeLLM{response: `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"skillScore": 250,
		"experienceScore": -10,
		"educationScore": 60,
		"finalScore": 999,
		"feedback": "odd scores"
	}`}
	evaluator := NewEvaluatorService(llm, WeightedScorer{})

	eval, err := evaluator.Evaluate(context.Background(), testCandidate(), models.DefaultJobProfile())
	require.NoError(t, err)

	assert.Equal(t, 100.0, eval.SkillScore)
	assert.Equal(t, 0.0, eval.ExperienceScore)
	assert.Equal(t, 60.0, eval.EducationScore)
	// 100*0.7 + 0*0.2 + 60*0.1
	assert.InDelta(t, 76.0, eval.FinalScore, 0.0001)
	assert.GreaterOrEqual(t, eval.FinalScore, 0.0)
	assert.LessOrEqual(t, eval.FinalScore, 100.0)
}

func TestEvaluatorNormalizesNilSkillLists(t *testing.T) {
	llm := &fakeLLM{response: `{"name": "Jane Doe", "skillScore": 10, "experienceScore": 10, "educationScore": 10}`}
	evaluator := NewEvaluatorService(llm, WeightedScorer{})

	eval, err := evaluator.Evaluate(context.Background(), testCandidate(), models.DefaultJobProfile())
	require.NoError(t, err)

	assert.NotNil(t, eval.CandidateSkills)
	assert.NotNil(t, eval.RequiredSkills)
	assert.NotNil(t, eval.MatchedSkills)
	assert.NotNil(t, eval.MissingSkills)
}

func TestEvaluatorSerializesCandidateAndRequirements(t *testing.T) {
	llm := &fakeLLM{response: `{"name": "Jane Doe", "skillScore": 10, "experienceScore": 10, "educationScore": 10}`}
	evaluator := NewEvaluatorService(llm, WeightedScorer{})

	_, err := evaluator.Evaluate(context.Background(), testCandidate(), models.DefaultJobProfile())
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "jane@example.com")
	assert.Contains(t, llm.prompts[0], "Machine Learning")
	assert.Contains(t, llm.prompts[0], "requiredExperience")
}

func TestEvaluatorPropagatesFailures(t *testing.T) {
	t.Run("model failure", func(t *testing.T) {
		evaluator := NewEvaluatorService(&fakeLLM{err: ErrModel}, WeightedScorer{})
		_, err := evaluator.Evaluate(context.Background(), testCandidate(), models.DefaultJobProfile())
		assert.ErrorIs(t, err, ErrModel)
	})

	t.Run("malformed response", func(t *testing.T) {
		evaluator := NewEvaluatorService(&fakeLLM{response: "```garbage```"}, WeightedScorer{})
		_, err := evaluator.Evaluate(context.Background(), testCandidate(), models.DefaultJobProfile())
		assert.ErrorIs(t, err, ErrResponseFormat)
	})
}
