package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildExtractionPrompt creates the prompt for pulling structured candidate
// data out of raw resume text.
func (pb *PromptBuilder) BuildExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`Resume Text:
%s

You are a Resume Screening Assistant. Your task is to analyze the candidate's resume text and extract structured information only from the content of the resume. Do not invent or add any information.

Return a clean JSON object in this format:
{
  "name": "Exact name from resume",
  "email": "candidate's email address",
  "candidateSkills": ["list", "of", "skills"],
  "experience": "Number of years or range",
  "education": "Highest degree or education"
}

Instructions:
1. Always use the exact name as written in the resume.
2. Extract the email address from the resume (e.g., "john.doe@gmail.com", "candidate@example.com").
3. Extract all skills mentioned in the resume and list them under "candidateSkills".
4. Estimate experience from the text (e.g., "3 years", "6+ years").
5. Identify the highest education level or degree mentioned.
6. **Do not wrap the JSON in markdown or code blocks. Return only the JSON object itself.**
7. If a field is missing, use "Not found" or an empty array.`, resumeText)
}

// BuildEvaluationPrompt creates the prompt for scoring a candidate against
// the job requirements. Both arguments are pre-serialized JSON documents.
func (pb *PromptBuilder) BuildEvaluationPrompt(candidateJSON, requirementsJSON string) string {
	return fmt.Sprintf(`You are an AI Resume Evaluation Agent.
Your task is to compare a candidate's extracted resume data with the job requirements below and return a structured JSON evaluation with a detailed and accurate score.
**Return JSON only, no backticks, no markdown. The output must be a valid, parsable JSON object.**

This is the candidate's extracted data:
%s

These are the job requirements:
%s

Now, produce the final evaluation in this exact format:
{
  "name": "Full Name of Candidate",
  "email": "candidate's email address",
  "candidateSkills": ["skills from candidate"],
  "requiredSkills": ["skills required for job"],
  "matchedSkills": ["skills that overlap"],
  "missingSkills": ["required skills not found in candidateSkills"],
  "skillScore": 0,
  "experience": "Candidate experience",
  "experienceScore": 0,
  "education": "Candidate education",
  "educationScore": 0,
  "finalScore": 0,
  "feedback": "Brief summary of candidate's suitability",
  "weights": {
    "skills": 0.7,
    "experience": 0.2,
    "education": 0.1
  }
}

Score skillScore, experienceScore and educationScore each from 0 to 100.`, candidateJSON, requirementsJSON)
}
