package models

// Weights are the fixed scoring weights; they always sum to 1.0.
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// Evaluation is the scored comparison of a candidate against the job
// profile. It is immutable once produced by the evaluator; the pipeline
// wraps it in a ScreeningResult to append delivery status.
type Evaluation struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	CandidateSkills []string `json:"candidateSkills"`
	RequiredSkills  []string `json:"requiredSkills"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	SkillScore      float64  `json:"skillScore"`
	Experience      string   `json:"experience"`
	ExperienceScore float64  `json:"experienceScore"`
	Education       string   `json:"education"`
	EducationScore  float64  `json:"educationScore"`
	FinalScore      float64  `json:"finalScore"`
	Feedback        string   `json:"feedback"`
	Weights         Weights  `json:"weights"`
}

// ScreeningResult is the response body for POST /upload_resume: the
// evaluation plus delivery-status fields. EmailRecipient is null when the
// notification was not sent; SavedToSheets is present only when the advance
// branch ran with the result logger enabled.
type ScreeningResult struct {
	Evaluation
	EmailSent      bool    `json:"email_sent"`
	EmailRecipient *string `json:"email_recipient"`
	SavedToSheets  *bool   `json:"saved_to_sheets,omitempty"`
}
