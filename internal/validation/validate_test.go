package validation

import (
	"strings"
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goodResume() string {
	var sb strings.Builder
	sb.WriteString("Test User — Senior Backend Engineer\n\nFinleap Connect\n")
	for i := 0; i < 7; i++ {
		sb.WriteString("- Delivered backend services in Go with kafka pipelines and solid operational results\n")
	}
	sb.WriteString(strings.Repeat("Summary of platform and kubernetes and go and kafka delivery work. ", 15))
	return sb.String()
}

func validateBundle() *types.ApplicationBundle {
	letter := "Dear team, during my time at Finleap Connect I built go and kafka systems on kubernetes. " +
		strings.Repeat("I shipped backend platform work with careful engineering and clear results. ", 15)
	email := "Hello, I recently applied for the backend role. My experience with go, kafka and kubernetes at " +
		"Finleap Connect maps closely to the posting. I would welcome a short conversation about the team. Thanks, Test User."
	return &types.ApplicationBundle{
		Company:     "Acme",
		Country:     "germany",
		Resume:      goodResume(),
		CoverLetter: letter,
		Email:       email,
		LinkedIn: types.LinkedInMessages{
			ConnectionNote: "Hi, I applied for the backend role at Acme and would enjoy connecting.",
			FollowUp:       "Following up on my application for the backend role. Happy to share details.",
		},
	}
}

func TestValidateBundle_Passes(t *testing.T) {
	p := factTestProfile()
	analysis := &types.JobAnalysis{
		Seniority: types.SenioritySenior,
		Keywords:  []string{"go", "kafka", "kubernetes"},
	}

	report := ValidateBundle(validateBundle(), p, analysis)

	assert.True(t, report.Passed, "violations: %+v", report.Violations)
	assert.Equal(t, 0, report.ErrorCount())
	assert.Len(t, report.ATSScores, 5)
	assert.Len(t, report.Styles, 5)
}

func TestValidateBundle_EmptyArtifactIsError(t *testing.T) {
	p := factTestProfile()
	bundle := validateBundle()
	bundle.Email = ""

	report := ValidateBundle(bundle, p, &types.JobAnalysis{Seniority: types.SeniorityMid})

	assert.False(t, report.Passed)
	var found bool
	for _, v := range report.Violations {
		if v.Type == "empty_artifact" && v.Artifact == "email" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateBundle_FabricationFailsReport(t *testing.T) {
	p := factTestProfile()
	bundle := validateBundle()
	bundle.Resume = strings.Replace(bundle.Resume, "Finleap Connect", "TechCorp", 1)

	report := ValidateBundle(bundle, p, &types.JobAnalysis{Seniority: types.SenioritySenior})

	assert.False(t, report.Passed)
	require.Positive(t, report.ErrorCount())
}

func TestValidateBundle_FabricationInOutreachArtifacts(t *testing.T) {
	p := factTestProfile()
	bundle := validateBundle()
	bundle.Email = strings.Replace(bundle.Email, "Finleap Connect", "TechCorp", 1)
	bundle.LinkedIn.ConnectionNote = "Hi, I led backend work at TechCorp and applied for your role."

	report := ValidateBundle(bundle, p, &types.JobAnalysis{Seniority: types.SenioritySenior})

	assert.False(t, report.Passed)

	flagged := make(map[string]bool)
	for _, v := range report.Violations {
		if v.Type == "fabricated_company" {
			flagged[v.Artifact] = true
		}
	}
	assert.True(t, flagged["email"], "violations: %+v", report.Violations)
	assert.True(t, flagged["linkedin_connection"], "violations: %+v", report.Violations)
}

func TestValidateBundle_WarningsDoNotFail(t *testing.T) {
	p := factTestProfile()
	bundle := validateBundle()
	// Thin email triggers a depth warning but no error.
	bundle.Email = "Hello, I applied to the role at Finleap Connect. Short note."

	report := ValidateBundle(bundle, p, &types.JobAnalysis{Seniority: types.SenioritySenior})

	assert.True(t, report.Passed)
	assert.Positive(t, report.WarningCount())
}
