package services

import (
	"context"
	"fmt"

	"rahultripathi/resume-screener/internal/models"
)

// StructuredDataExtractor turns plain resume text into a CandidateRecord.
type StructuredDataExtractor interface {
	Extract(ctx context.Context, resumeText string) (*models.CandidateRecord, error)
}

type structuredDataExtractor struct {
	llm           LLMClient
	promptBuilder *PromptBuilder
}

func NewStructuredDataExtractor(llm LLMClient) StructuredDataExtractor {
	return &structuredDataExtractor{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
	}
}

// Extract implements StructuredDataExtractor. Adapter failures surface
// unchanged; there is no local fallback heuristic.
func (e *structuredDataExtractor) Extract(ctx context.Context, resumeText string) (*models.CandidateRecord, error) {
	prompt := e.promptBuilder.BuildExtractionPrompt(resumeText)

	var record models.CandidateRecord
	if err := e.llm.GenerateJSON(ctx, prompt, &record); err != nil {
		return nil, fmt.Errorf("failed to extract candidate data: %w", err)
	}

	// The prompt asks for sentinels, but the model does not always comply.
	record.ApplyDefaults()

	return &record, nil
}
