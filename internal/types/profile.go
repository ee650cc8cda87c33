// Package types provides type definitions for structured data used throughout the aply toolkit.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is the candidate's ground-truth record. Every generated artifact is
// validated against it: employers, metrics, and skills that do not appear here
// are treated as fabrications.
type Profile struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Headline string `json:"headline,omitempty"`

	YearsExperience int          `json:"years_experience" validate:"gte=0"`
	Employment      []Employment `json:"employment" validate:"required,min=1,dive"`
	Education       []Education  `json:"education,omitempty"`
	Skills          []string     `json:"skills,omitempty"`

	Facts FactSheet `json:"facts"`
}

// Employment is a single position in the candidate's history.
type Employment struct {
	Company      string        `json:"company" validate:"required"`
	Title        string        `json:"title" validate:"required"`
	StartDate    string        `json:"start_date,omitempty"`
	EndDate      string        `json:"end_date,omitempty"` // empty means current
	Domain       string        `json:"domain,omitempty"`   // e.g. "fintech", "e-commerce"
	Achievements []Achievement `json:"achievements,omitempty"`
}

// Achievement is one verifiable accomplishment with its source metrics.
type Achievement struct {
	Text    string   `json:"text"`
	Metrics []string `json:"metrics,omitempty"` // exact metric strings, e.g. "35%", "2M requests/day"
	Skills  []string `json:"skills,omitempty"`
}

// FactSheet holds the lists the rule-based validators check generated
// content against.
type FactSheet struct {
	// RealCompanies is the allowlist of employer names that may appear in
	// generated content. At least one must be present.
	RealCompanies []string `json:"real_companies" validate:"required,min=1"`
	// FabricatedCompanies is a denylist of names LLMs have previously
	// invented for this profile. Any occurrence is an error.
	FabricatedCompanies []string `json:"fabricated_companies,omitempty"`
	// RealMetrics are the exact quantified claims backed by the profile.
	RealMetrics []string `json:"real_metrics,omitempty"`
	// AvoidedDomains are industries the candidate has no background in and
	// does not want to claim (e.g. "energy trading").
	AvoidedDomains []string `json:"avoided_domains,omitempty"`
}

// CurrentEmployment returns the most recent position, or nil if the
// employment history is empty.
func (p *Profile) CurrentEmployment() *Employment {
	if len(p.Employment) == 0 {
		return nil
	}
	return &p.Employment[0]
}

// AllMetrics collects the fact-sheet metrics plus every achievement metric.
func (p *Profile) AllMetrics() []string {
	seen := make(map[string]bool)
	var metrics []string
	add := func(m string) {
		if m != "" && !seen[m] {
			metrics = append(metrics, m)
			seen[m] = true
		}
	}
	for _, m := range p.Facts.RealMetrics {
		add(m)
	}
	for _, emp := range p.Employment {
		for _, ach := range emp.Achievements {
			for _, m := range ach.Metrics {
				add(m)
			}
		}
	}
	return metrics
}

// Education is a single degree record.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
}
