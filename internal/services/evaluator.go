package services

import (
	"context"
	"encoding/json"
	"fmt"

	"rahultripathi/resume-screener/internal/models"
)

// EvaluatorService scores a candidate against the job profile.
type EvaluatorService interface {
	Evaluate(ctx context.Context, candidate *models.CandidateRecord, profile *models.JobProfile) (*models.Evaluation, error)
}

type evaluatorService struct {
	llm           LLMClient
	scorer        Scorer
	promptBuilder *PromptBuilder
}

func NewEvaluatorService(llm LLMClient, scorer Scorer) EvaluatorService {
	return &evaluatorService{
		llm:           llm,
		scorer:        scorer,
		promptBuilder: NewPromptBuilder(),
	}
}

// Evaluate implements EvaluatorService. The model produces the component
// scores, matched/missing skill sets and feedback; the final score is
// recomputed locally from the components and the fixed weights instead of
// trusting the model's arithmetic.
func (e *evaluatorService) Evaluate(ctx context.Context, candidate *models.CandidateRecord, profile *models.JobProfile) (*models.Evaluation, error) {
	candidateJSON, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize candidate: %w", err)
	}

	requirementsJSON, err := json.MarshalIndent(profile.Requirements(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize job requirements: %w", err)
	}

	prompt := e.promptBuilder.BuildEvaluationPrompt(string(candidateJSON), string(requirementsJSON))

	var eval models.Evaluation
	if err := e.llm.GenerateJSON(ctx, prompt, &eval); err != nil {
		return nil, fmt.Errorf("failed to evaluate candidate: %w", err)
	}

	e.normalize(&eval)

	return &eval, nil
}

// normalize clamps the component scores, pins the weights, recomputes the
// final score and makes sure no list field is null.
func (e *evaluatorService) normalize(eval *models.Evaluation) {
	eval.SkillScore = clampScore(eval.SkillScore)
	eval.ExperienceScore = clampScore(eval.ExperienceScore)
	eval.EducationScore = clampScore(eval.EducationScore)

	eval.Weights = DefaultWeights
	eval.FinalScore = e.scorer.FinalScore(eval.SkillScore, eval.ExperienceScore, eval.EducationScore, eval.Weights)

	if eval.CandidateSkills == nil {
		eval.CandidateSkills = []string{}
	}
	if eval.RequiredSkills == nil {
		eval.RequiredSkills = []string{}
	}
	if eval.MatchedSkills == nil {
		eval.MatchedSkills = []string{}
	}
	if eval.MissingSkills == nil {
		eval.MissingSkills = []string{}
	}
}
