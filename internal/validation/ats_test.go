package validation

import (
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreATS(t *testing.T) {
	keywords := []string{"kubernetes", "go", "kafka", "terraform"}
	text := "Built services in Go on Kubernetes."

	score := ScoreATS("resume", text, keywords)

	assert.Equal(t, 50, score.Score)
	assert.ElementsMatch(t, []string{"kubernetes", "go"}, score.MatchedKeywords)
	assert.ElementsMatch(t, []string{"kafka", "terraform"}, score.MissingKeywords)
}

func TestScoreATS_NoKeywords(t *testing.T) {
	score := ScoreATS("resume", "anything", nil)
	assert.Equal(t, 100, score.Score)
}

func TestScoreATS_CaseInsensitive(t *testing.T) {
	score := ScoreATS("resume", "KAFKA pipelines", []string{"kafka"})
	assert.Equal(t, 100, score.Score)
}

func TestATSViolations(t *testing.T) {
	scores := []types.ATSScore{
		{Artifact: "resume", Score: 25, MissingKeywords: []string{"a", "b", "c", "d", "e", "f", "g"}},
		{Artifact: "cover_letter", Score: 80},
		{Artifact: "linkedin_connection", Score: 0},
	}

	violations := ATSViolations(scores)

	require.Len(t, violations, 1)
	assert.Equal(t, "low_ats_score", violations[0].Type)
	assert.Equal(t, "resume", violations[0].Artifact)
	assert.Contains(t, violations[0].Details, "25/100")
}
