package validation

import (
	"strings"
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStyle_CleanTextSoundsHuman(t *testing.T) {
	text := "I built the checkout pipeline at Finleap Connect. It cut latency by 35%."

	result := CheckStyle("cover_letter", text)

	assert.Equal(t, 100, result.HumanScore)
	assert.True(t, result.SoundsHuman)
	assert.Empty(t, result.ClichesFound)
}

func TestCheckStyle_ClichesDeductPoints(t *testing.T) {
	text := "I am excited to leverage my skills in this dynamic environment. " +
		"My proven track record speaks for itself."

	result := CheckStyle("cover_letter", text)

	require.NotEmpty(t, result.ClichesFound)
	assert.Contains(t, result.ClichesFound, "i am excited to")
	assert.Contains(t, result.ClichesFound, "proven track record")
	assert.Less(t, result.HumanScore, 100)
}

func TestCheckStyle_MachineSounding(t *testing.T) {
	text := "I am thrilled to delve into this cutting-edge opportunity. " +
		"Furthermore, my proven track record will seamlessly unlock the potential " +
		"of your dynamic environment."

	result := CheckStyle("cover_letter", text)

	assert.False(t, result.SoundsHuman)
}

func TestCheckStyle_EmDashOveruse(t *testing.T) {
	text := "One — two — three — four" + strings.Repeat(" filler", 5)

	result := CheckStyle("email", text)

	assert.Equal(t, 3, result.EmDashCount)
	// One em-dash is free, two excess at 5 points each.
	assert.Equal(t, 90, result.HumanScore)
}

func TestCheckStyle_ScoreFloorsAtZero(t *testing.T) {
	var sb strings.Builder
	for _, cliche := range llmCliches {
		sb.WriteString(cliche)
		sb.WriteString(". ")
	}

	result := CheckStyle("cover_letter", sb.String())
	assert.Equal(t, 0, result.HumanScore)
	assert.False(t, result.SoundsHuman)
}

func TestStyleViolations(t *testing.T) {
	human := CheckStyle("resume", "Plain factual content about work at Finleap Connect.")
	machine := CheckStyle("email", "I am thrilled to delve into synergy and unlock the potential of cutting-edge tapestry. Furthermore, seamlessly.")

	violations := StyleViolations([]types.StyleResult{human, machine})
	require.Len(t, violations, 1)
	assert.Equal(t, "machine_style", violations[0].Type)
	assert.Equal(t, "email", violations[0].Artifact)
}
