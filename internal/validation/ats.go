package validation

import (
	"fmt"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// atsWarnThreshold is the score below which an ATS warning is raised.
const atsWarnThreshold = 40

// ScoreATS computes the heuristic keyword-overlap score between the JD
// keywords and one generated artifact. The score is the matched percentage,
// 0-100. This approximates how tracking software might rank the content; it
// is not calibrated against any real ATS.
func ScoreATS(artifact string, text string, keywords []string) types.ATSScore {
	score := types.ATSScore{
		Artifact:        artifact,
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
	}
	if len(keywords) == 0 {
		score.Score = 100
		return score
	}

	lowerText := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			score.MatchedKeywords = append(score.MatchedKeywords, kw)
		} else {
			score.MissingKeywords = append(score.MissingKeywords, kw)
		}
	}

	score.Score = len(score.MatchedKeywords) * 100 / len(keywords)
	return score
}

// ATSViolations converts low ATS scores into warning violations.
func ATSViolations(scores []types.ATSScore) []types.Violation {
	var violations []types.Violation
	for _, s := range scores {
		// Outreach messages are too short for keyword stuffing to be
		// meaningful.
		if strings.HasPrefix(s.Artifact, "linkedin") {
			continue
		}
		if s.Score < atsWarnThreshold {
			violations = append(violations, types.Violation{
				Type:     "low_ats_score",
				Severity: "warning",
				Details:  formatATSDetails(s),
				Artifact: s.Artifact,
			})
		}
	}
	return violations
}

func formatATSDetails(s types.ATSScore) string {
	missing := s.MissingKeywords
	if len(missing) > 5 {
		missing = missing[:5]
	}
	return fmt.Sprintf("ATS keyword overlap %d/100, missing: %s", s.Score, strings.Join(missing, ", "))
}
