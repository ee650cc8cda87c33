package validation

import (
	"fmt"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// bulletRange is the acceptable resume bullet-count window for a seniority
// level.
type bulletRange struct {
	min, max int
}

var bulletRanges = map[types.Seniority]bulletRange{
	types.SeniorityJunior: {3, 8},
	types.SeniorityMid:    {4, 10},
	types.SenioritySenior: {6, 14},
	types.SeniorityStaff:  {6, 16},
	types.SeniorityLead:   {6, 16},
}

// minWordCounts are per-artifact floors below which content is considered
// too thin to send.
var minWordCounts = map[string]int{
	"resume":       120,
	"cover_letter": 120,
	"email":        40,
}

// CheckDepth validates content depth: bullet counts on the resume scale with
// the role's seniority, and each artifact meets a minimum word count.
func CheckDepth(artifact string, text string, seniority types.Seniority) []types.Violation {
	var violations []types.Violation

	if minWords, ok := minWordCounts[artifact]; ok {
		words := len(strings.Fields(text))
		if words < minWords {
			violations = append(violations, types.Violation{
				Type:     "content_too_thin",
				Severity: "warning",
				Details:  fmt.Sprintf("only %d words, expected at least %d", words, minWords),
				Artifact: artifact,
			})
		}
	}

	if artifact == "resume" {
		r, ok := bulletRanges[seniority]
		if !ok {
			r = bulletRanges[types.SeniorityMid]
		}
		bullets := CountBullets(text)
		if bullets < r.min {
			violations = append(violations, types.Violation{
				Type:     "bullet_count",
				Severity: "warning",
				Details: fmt.Sprintf("%d bullets for a %s role, expected %d-%d",
					bullets, seniority, r.min, r.max),
				Artifact: artifact,
			})
		} else if bullets > r.max {
			violations = append(violations, types.Violation{
				Type:     "bullet_count",
				Severity: "warning",
				Details: fmt.Sprintf("%d bullets for a %s role, expected %d-%d",
					bullets, seniority, r.min, r.max),
				Artifact: artifact,
			})
		}
	}

	return violations
}

// CountBullets counts lines that start with a bullet marker.
func CountBullets(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") ||
			strings.HasPrefix(trimmed, "• ") {
			count++
		}
	}
	return count
}
