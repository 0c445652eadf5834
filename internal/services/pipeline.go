package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"rahultripathi/resume-screener/internal/models"
)

// AdvanceThreshold is the final score at which a candidate moves forward.
// The boundary is inclusive on the advance side.
const AdvanceThreshold = 50.0

// Pipeline runs the full screening sequence for one stored resume:
// extract text, structure it, evaluate against the job profile, notify,
// and log advancing candidates to the spreadsheet.
type Pipeline interface {
	ScreenResume(ctx context.Context, pdfPath string) (*models.ScreeningResult, error)
}

type pipeline struct {
	parser       PDFParserService
	extractor    StructuredDataExtractor
	evaluator    EvaluatorService
	mailer       Mailer
	resultLogger ResultLogger // nil when spreadsheet logging is disabled
	profile      *models.JobProfile
	fallbackTo   string
}

func NewPipeline(
	parser PDFParserService,
	extractor StructuredDataExtractor,
	evaluator EvaluatorService,
	mailer Mailer,
	resultLogger ResultLogger,
	profile *models.JobProfile,
	fallbackRecipient string,
) Pipeline {
	return &pipeline{
		parser:       parser,
		extractor:    extractor,
		evaluator:    evaluator,
		mailer:       mailer,
		resultLogger: resultLogger,
		profile:      profile,
		fallbackTo:   fallbackRecipient,
	}
}

// ScreenResume implements Pipeline. Extraction and LLM failures abort the
// request; notification and spreadsheet failures degrade to status fields
// on the result.
func (p *pipeline) ScreenResume(ctx context.Context, pdfPath string) (*models.ScreeningResult, error) {
	log.Println("📄 Extracting resume text...")
	resumeText, err := p.parser.ExtractText(pdfPath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("%w: could not extract text from the PDF, the file might be empty or image-based", ErrExtraction)
	}

	log.Println("🤖 Extracting structured candidate data...")
	candidate, err := p.extractor.Extract(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	log.Println("🤖 Evaluating candidate against job requirements...")
	eval, err := p.evaluator.Evaluate(ctx, candidate, p.profile)
	if err != nil {
		return nil, err
	}

	recipient := p.selectRecipient(eval)
	advance := eval.FinalScore >= AdvanceThreshold

	var subject, body string
	if advance {
		subject, body = buildAdvanceEmail(eval)
	} else {
		subject, body = buildRejectionEmail(eval)
	}

	log.Printf("📧 Sending notification to %s...\n", recipient)
	sent := p.mailer.Send(ctx, recipient, subject, body)

	result := &models.ScreeningResult{
		Evaluation: *eval,
		EmailSent:  sent,
	}
	if sent {
		result.EmailRecipient = &recipient
	}

	if advance && p.resultLogger != nil {
		log.Println("📊 Saving result to spreadsheet...")
		saved := p.resultLogger.Append(ctx, eval)
		result.SavedToSheets = &saved
	}

	log.Printf("✅ Screening completed for %s (final score %.0f)\n", eval.Name, eval.FinalScore)
	return result, nil
}

// selectRecipient addresses the candidate directly when the resume carried a
// usable email, otherwise the fixed HR address.
func (p *pipeline) selectRecipient(eval *models.Evaluation) string {
	if eval.Email != "" && eval.Email != models.NotFound && strings.Contains(eval.Email, "@") {
		return eval.Email
	}
	return p.fallbackTo
}

func greetingName(eval *models.Evaluation) string {
	if eval.Name == "" || eval.Name == models.NotFound {
		return "Candidate"
	}
	return eval.Name
}

// formatScore renders a score without rounding, so the email always carries
// the exact value the decision was made on. A recomputed final score is
// routinely fractional (e.g. 75*0.7 = 52.5).
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func buildAdvanceEmail(eval *models.Evaluation) (string, string) {
	subject := "🎉 Congratulations - You're Moving Forward!"
	body := fmt.Sprintf(`Dear %s,

Congratulations! We're pleased to inform you that your application has been shortlisted.

📊 Your Evaluation Results:
• Final Score: %s/100
• Skills Match: %s/100
• Experience Score: %s/100
• Education Score: %s/100

💼 Feedback:
%s

We'll be in touch soon with next steps!

Best regards,
Hiring Team`,
		greetingName(eval),
		formatScore(eval.FinalScore), formatScore(eval.SkillScore),
		formatScore(eval.ExperienceScore), formatScore(eval.EducationScore),
		eval.Feedback,
	)
	return subject, body
}

func buildRejectionEmail(eval *models.Evaluation) (string, string) {
	subject := "Thank You for Your Application"
	body := fmt.Sprintf(`Dear %s,

Thank you for taking the time to apply for this position.

📊 Your Evaluation Results:
• Final Score: %s/100
• Skills Match: %s/100
• Experience Score: %s/100
• Education Score: %s/100

💼 Feedback:
%s

While your profile doesn't match our current requirements, we encourage you to apply for future opportunities that better align with your skills.

We wish you the best in your job search!

Best regards,
Hiring Team`,
		greetingName(eval),
		formatScore(eval.FinalScore), formatScore(eval.SkillScore),
		formatScore(eval.ExperienceScore), formatScore(eval.EducationScore),
		eval.Feedback,
	)
	return subject, body
}
