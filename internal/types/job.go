package types

// Seniority is the rough level a job posting targets.
type Seniority string

// Seniority levels detected by the job-description analyzer.
const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityStaff  Seniority = "staff"
	SeniorityLead   Seniority = "lead"
)

// BusinessModel classifies who the hiring company sells to.
type BusinessModel string

// Business model buckets.
const (
	BusinessB2B     BusinessModel = "b2b"
	BusinessB2C     BusinessModel = "b2c"
	BusinessUnknown BusinessModel = "unknown"
)

// JobAnalysis is the structured result of bucketing a free-text job
// description. The analysis is deterministic: the same input text always
// produces the same buckets.
type JobAnalysis struct {
	Company   string        `json:"company"`
	RoleTitle string        `json:"role_title"`
	Seniority Seniority     `json:"seniority"`
	Business  BusinessModel `json:"business_model"`

	// FocusAreas are technical focus buckets matched in the text,
	// e.g. "ai_ml", "backend", "data".
	FocusAreas []string `json:"focus_areas"`
	// Domains are industry buckets matched in the text,
	// e.g. "fintech", "energy_trading".
	Domains []string `json:"domains"`
	// Keywords are the JD terms used for ATS overlap scoring.
	Keywords []string `json:"keywords"`

	WordCount int `json:"word_count"`
}

// HasFocus reports whether a focus bucket was detected.
func (a *JobAnalysis) HasFocus(area string) bool {
	for _, f := range a.FocusAreas {
		if f == area {
			return true
		}
	}
	return false
}

// HasDomain reports whether an industry bucket was detected.
func (a *JobAnalysis) HasDomain(domain string) bool {
	for _, d := range a.Domains {
		if d == domain {
			return true
		}
	}
	return false
}
