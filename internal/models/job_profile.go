package models

import "fmt"

// JobProfile holds the requirements a candidate is scored against. It is
// loaded once at startup (from JOB_REQUIREMENTS_FILE or the built-in
// default) and never mutated by a request.
type JobProfile struct {
	JobTitle               string   `json:"job_title"`
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills"`
	MinimumExperienceYears int      `json:"minimum_experience_years"`
	RequiredEducation      string   `json:"required_education"`
}

// JobRequirements is the view of the profile serialized into the
// evaluation prompt.
type JobRequirements struct {
	JobTitle           string   `json:"job_title"`
	RequiredSkills     []string `json:"requiredSkills"`
	RequiredExperience string   `json:"requiredExperience"`
	RequiredEducation  string   `json:"requiredEducation"`
}

// Requirements merges required and preferred skills into the single
// requiredSkills list the evaluation prompt expects.
func (p *JobProfile) Requirements() JobRequirements {
	skills := make([]string, 0, len(p.RequiredSkills)+len(p.PreferredSkills))
	skills = append(skills, p.RequiredSkills...)
	skills = append(skills, p.PreferredSkills...)

	return JobRequirements{
		JobTitle:           p.JobTitle,
		RequiredSkills:     skills,
		RequiredExperience: fmt.Sprintf("%d years", p.MinimumExperienceYears),
		RequiredEducation:  p.RequiredEducation,
	}
}

// DefaultJobProfile returns the built-in software developer profile used
// when no requirements file is configured.
func DefaultJobProfile() *JobProfile {
	return &JobProfile{
		JobTitle: "Software Developer",
		RequiredSkills: []string{
			"Python", "Machine Learning", "Data Analysis", "SQL", "JavaScript",
			"React.js", "HTML", "CSS", "Node.js", "Git", "Cloud Computing", "REST APIs",
		},
		MinimumExperienceYears: 2,
		RequiredEducation:      "Bachelor's Degree in Computer Science or equivalent",
	}
}
