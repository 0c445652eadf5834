package services

import (
	"context"

	"rahultripathi/resume-screener/internal/models"
)

// fakeLLM replays a canned model response through the real decode path.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string, target any) error {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return f.err
	}
	return decodeModelJSON(f.response, target)
}

type fakeParser struct {
	text string
	err  error
}

func (f *fakeParser) ExtractText(filePath string) (string, error) {
	return f.text, f.err
}

type fakeExtractor struct {
	record *models.CandidateRecord
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, resumeText string) (*models.CandidateRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

type fakeEvaluator struct {
	eval *models.Evaluation
	err  error
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, candidate *models.CandidateRecord, profile *models.JobProfile) (*models.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.eval, nil
}

type fakeMailer struct {
	sent        bool
	gotTo       string
	gotSubject  string
	gotBody     string
	invocations int
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) bool {
	f.invocations++
	f.gotTo = to
	f.gotSubject = subject
	f.gotBody = body
	return f.sent
}

type fakeResultLogger struct {
	saved       bool
	invocations int
}

func (f *fakeResultLogger) Append(ctx context.Context, eval *models.Evaluation) bool {
	f.invocations++
	return f.saved
}
