package validation

import (
	"fmt"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// focusByDomain maps a candidate employment domain (normalized form) to the
// job focus buckets it gives credible experience in.
var focusByDomain = map[string][]string{
	"fintech":    {"backend", "data"},
	"e_commerce": {"backend", "platform", "data"},
	"consulting": {"backend"},
	"healthcare": {"backend", "data"},
	"adtech":     {"backend", "data"},
}

// Precheck runs the pre-generation domain/experience compatibility check.
// It never calls the LLM; its job is to stop a hopeless application before
// any token is spent. The outcome is a soft decision, not an error.
func Precheck(p *types.Profile, analysis *types.JobAnalysis) *types.PrecheckResult {
	result := &types.PrecheckResult{Decision: types.DecisionProceed}

	experienceDomains := make(map[string]bool)
	for _, emp := range p.Employment {
		if emp.Domain != "" {
			experienceDomains[normalizeDomain(emp.Domain)] = true
		}
	}
	avoided := make(map[string]bool)
	for _, d := range p.Facts.AvoidedDomains {
		avoided[normalizeDomain(d)] = true
	}

	for _, domain := range analysis.Domains {
		key := normalizeDomain(domain)
		switch {
		case avoided[key]:
			result.AvoidedDomains = append(result.AvoidedDomains, domain)
		case experienceDomains[key]:
			result.MatchedDomains = append(result.MatchedDomains, domain)
		}
	}

	// Focus overlap between the JD and what the candidate's history supports.
	supported := make(map[string]bool)
	for domain := range experienceDomains {
		for _, focus := range focusByDomain[domain] {
			supported[focus] = true
		}
	}
	for _, skill := range p.Skills {
		if bucket := skillFocusBucket(skill); bucket != "" {
			supported[bucket] = true
		}
	}
	for _, focus := range analysis.FocusAreas {
		if supported[focus] {
			result.FocusOverlap = append(result.FocusOverlap, focus)
		}
	}

	// Decision rules. An avoided domain with nothing to stand on is a hard
	// stop; partial overlap downgrades to warnings.
	switch {
	case len(result.AvoidedDomains) > 0 && len(result.MatchedDomains) == 0 && len(result.FocusOverlap) == 0:
		result.Decision = types.DecisionAbort
		result.Violations = append(result.Violations, types.Violation{
			Type:     "domain_mismatch",
			Severity: "error",
			Details: fmt.Sprintf("job is in avoided domain(s) %s with no supporting experience",
				strings.Join(result.AvoidedDomains, ", ")),
		})
		result.Recommendations = append(result.Recommendations,
			"skip this application or rewrite the profile positioning first")

	case len(result.AvoidedDomains) > 0:
		result.Decision = types.DecisionProceedWithWarnings
		result.Violations = append(result.Violations, types.Violation{
			Type:     "domain_mismatch",
			Severity: "warning",
			Details: fmt.Sprintf("job touches avoided domain(s) %s; transferable experience exists",
				strings.Join(result.AvoidedDomains, ", ")),
		})
		result.Recommendations = append(result.Recommendations,
			"lean on transferable skills, do not claim domain expertise")

	case len(analysis.FocusAreas) > 0 && len(result.FocusOverlap) == 0:
		result.Decision = types.DecisionProceedWithWarnings
		result.Violations = append(result.Violations, types.Violation{
			Type:     "experience_gap",
			Severity: "warning",
			Details: fmt.Sprintf("no focus overlap with JD areas: %s",
				strings.Join(analysis.FocusAreas, ", ")),
		})
	}

	return result
}

// normalizeDomain folds separators so "energy trading", "energy-trading" and
// "energy_trading" compare equal.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.ReplaceAll(domain, "-", "_")
	domain = strings.ReplaceAll(domain, " ", "_")
	return domain
}

// skillFocusBucket maps a profile skill to the focus bucket it supports.
func skillFocusBucket(skill string) string {
	switch strings.ToLower(skill) {
	case "go", "java", "grpc", "rest", "kafka", "postgresql", "distributed systems":
		return "backend"
	case "kubernetes", "terraform", "aws", "gcp", "ci/cd":
		return "platform"
	case "python", "spark", "airflow", "sql":
		return "data"
	case "pytorch", "tensorflow", "machine learning":
		return "ai_ml"
	}
	return ""
}
