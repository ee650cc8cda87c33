package validation

import (
	"fmt"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// llmCliches are phrases that read as machine-written. The list is the usual
// suspects observed in generated drafts, not a calibrated classifier.
var llmCliches = []string{
	"delve",
	"tapestry",
	"in today's fast-paced",
	"i am excited to",
	"i am thrilled to",
	"passionate about leveraging",
	"leverage my skills",
	"proven track record",
	"dynamic environment",
	"seamlessly",
	"cutting-edge",
	"synergy",
	"game-changer",
	"unlock the potential",
	"furthermore,",
	"moreover,",
	"it is worth noting",
	"in conclusion,",
	"align with your",
	"hit the ground running",
}

// clichePenalty and emDashPenalty are the per-hit deductions from the
// human-likeness score.
const (
	clichePenalty  = 12
	emDashPenalty  = 5
	humanThreshold = 60
)

// maxEmDashesAllowed is how many em-dashes pass without penalty; LLM drafts
// habitually overuse them.
const maxEmDashesAllowed = 1

// CheckStyle runs the human-vs-LLM writing-style heuristic on one artifact.
// Starting from 100, each cliché found and each excess em-dash deducts
// points; below the threshold the text "sounds like an LLM".
func CheckStyle(artifact string, text string) types.StyleResult {
	result := types.StyleResult{
		Artifact:   artifact,
		HumanScore: 100,
	}

	lowerText := strings.ToLower(text)
	for _, cliche := range llmCliches {
		if strings.Contains(lowerText, cliche) {
			result.ClichesFound = append(result.ClichesFound, cliche)
			result.HumanScore -= clichePenalty
		}
	}

	result.EmDashCount = strings.Count(text, "—")
	if excess := result.EmDashCount - maxEmDashesAllowed; excess > 0 {
		result.HumanScore -= excess * emDashPenalty
	}

	if result.HumanScore < 0 {
		result.HumanScore = 0
	}
	result.SoundsHuman = result.HumanScore >= humanThreshold

	return result
}

// StyleViolations converts machine-sounding artifacts into warnings.
func StyleViolations(results []types.StyleResult) []types.Violation {
	var violations []types.Violation
	for _, r := range results {
		if r.SoundsHuman {
			continue
		}
		violations = append(violations, types.Violation{
			Type:     "machine_style",
			Severity: "warning",
			Details: fmt.Sprintf("human-likeness %d/100, cliches: %s",
				r.HumanScore, strings.Join(r.ClichesFound, ", ")),
			Artifact: r.Artifact,
		})
	}
	return violations
}
