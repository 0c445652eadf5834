package models

// NotFound is the sentinel the extraction prompt asks the model to use for
// any scalar field absent from the resume text.
const NotFound = "Not found"

// CandidateRecord is the structured data pulled out of the resume text.
// Field keys mirror the extraction prompt's JSON contract.
type CandidateRecord struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Skills     []string `json:"candidateSkills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

// ApplyDefaults backfills the sentinel values so no key is ever missing from
// the record, even when the model leaves a field out of its response.
func (c *CandidateRecord) ApplyDefaults() {
	if c.Name == "" {
		c.Name = NotFound
	}
	if c.Email == "" {
		c.Email = NotFound
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Experience == "" {
		c.Experience = NotFound
	}
	if c.Education == "" {
		c.Education = NotFound
	}
}
