package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// metricPattern matches quantified claims: percentages, money, counts with
// scale suffixes, and "N+" style figures.
var metricPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent|x\b|k\b|K\b|M\b|B\b|million|billion)|\$\d[\d,.]*|\d+\+`)

// CheckFabricated scans one artifact for denylisted fabricated company
// names. Any occurrence is an error, regardless of artifact.
func CheckFabricated(artifact string, text string, p *types.Profile) []types.Violation {
	var violations []types.Violation
	lowerText := strings.ToLower(text)

	for _, fake := range p.Facts.FabricatedCompanies {
		if fake == "" {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(fake)) {
			violations = append(violations, types.Violation{
				Type:     "fabricated_company",
				Severity: "error",
				Details:  fmt.Sprintf("contains fabricated company name: %s", fake),
				Artifact: artifact,
			})
		}
	}
	return violations
}

// CheckFacts runs the full fact-preservation check on one generated
// artifact: the fabrication denylist plus the requirement that at least one
// allowlisted real company appears. Metric-like figures not present in the
// profile are flagged as warnings; the heuristic cannot tell a fabricated
// number from a rephrased one.
func CheckFacts(artifact string, text string, p *types.Profile) []types.Violation {
	violations := CheckFabricated(artifact, text, p)
	lowerText := strings.ToLower(text)

	foundReal := false
	for _, real := range p.Facts.RealCompanies {
		if real != "" && strings.Contains(lowerText, strings.ToLower(real)) {
			foundReal = true
			break
		}
	}
	if !foundReal {
		violations = append(violations, types.Violation{
			Type:     "missing_real_company",
			Severity: "error",
			Details:  "no allowlisted real company name appears in the content",
			Artifact: artifact,
		})
	}

	violations = append(violations, checkMetrics(artifact, text, p)...)

	return violations
}

// checkMetrics flags quantified claims that are not backed by the profile.
func checkMetrics(artifact string, text string, p *types.Profile) []types.Violation {
	known := p.AllMetrics()

	var violations []types.Violation
	seen := make(map[string]bool)
	for _, match := range metricPattern.FindAllString(text, -1) {
		match = strings.TrimSpace(match)
		if seen[match] {
			continue
		}
		seen[match] = true

		if !metricKnown(match, known) {
			violations = append(violations, types.Violation{
				Type:     "unverified_metric",
				Severity: "warning",
				Details:  fmt.Sprintf("metric %q is not in the profile's verified metrics", match),
				Artifact: artifact,
			})
		}
	}
	return violations
}

// metricKnown reports whether a matched figure appears in, or contains, a
// verified profile metric. Containment handles rephrasings like
// "2M requests/day" vs "2M".
func metricKnown(match string, known []string) bool {
	normMatch := normalizeMetric(match)
	for _, k := range known {
		normKnown := normalizeMetric(k)
		if normKnown == "" {
			continue
		}
		if strings.Contains(normKnown, normMatch) || strings.Contains(normMatch, normKnown) {
			return true
		}
	}
	return false
}

func normalizeMetric(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	return strings.ReplaceAll(m, " ", "")
}
