package types

// Decision is the outcome of the pre-generation compatibility check.
// Validation failures are soft business outcomes, not errors.
type Decision string

// Precheck decisions.
const (
	DecisionProceed             Decision = "PROCEED"
	DecisionProceedWithWarnings Decision = "PROCEED_WITH_WARNINGS"
	DecisionAbort               Decision = "ABORT"
)

// Violation represents a single validation failure
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"` // "error" or "warning"
	Details  string `json:"details"`
	// Artifact names which generated file raised this, e.g. "resume".
	Artifact string `json:"artifact,omitempty"`
}

// PrecheckResult is the output of the domain/experience compatibility check
// that runs before any LLM call.
type PrecheckResult struct {
	Decision        Decision    `json:"decision"`
	MatchedDomains  []string    `json:"matched_domains,omitempty"`
	AvoidedDomains  []string    `json:"avoided_domains,omitempty"`
	FocusOverlap    []string    `json:"focus_overlap,omitempty"`
	Violations      []Violation `json:"violations,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
}

// ATSScore is the heuristic keyword-overlap score for one artifact.
type ATSScore struct {
	Artifact        string   `json:"artifact"`
	Score           int      `json:"score"` // 0-100
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// StyleResult is the human-vs-LLM writing-style heuristic for one artifact.
type StyleResult struct {
	Artifact     string   `json:"artifact"`
	HumanScore   int      `json:"human_score"` // 0-100, higher reads more human
	ClichesFound []string `json:"cliches_found,omitempty"`
	EmDashCount  int      `json:"em_dash_count"`
	SoundsHuman  bool     `json:"sounds_human"`
}

// ValidationReport aggregates every post-generation check for one
// application bundle.
type ValidationReport struct {
	Company    string      `json:"company"`
	Country    string      `json:"country"`
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations"`

	Precheck  *PrecheckResult `json:"precheck,omitempty"`
	ATSScores []ATSScore      `json:"ats_scores,omitempty"`
	Styles    []StyleResult   `json:"style_results,omitempty"`
}

// ErrorCount returns the number of error-severity violations.
func (r *ValidationReport) ErrorCount() int {
	count := 0
	for _, v := range r.Violations {
		if v.Severity == "error" {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-severity violations.
func (r *ValidationReport) WarningCount() int {
	count := 0
	for _, v := range r.Violations {
		if v.Severity == "warning" {
			count++
		}
	}
	return count
}
