package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arjunmehta/aply/internal/types"
)

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(&types.JobAnalysis{
		Company:    "Acme Payments",
		RoleTitle:  "Senior Backend Engineer",
		Seniority:  types.SenioritySenior,
		Business:   types.BusinessB2B,
		FocusAreas: []string{"backend", "platform"},
		Domains:    []string{"fintech"},
		Keywords:   []string{"go", "kubernetes", "postgresql"},
		WordCount:  420,
	})
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "Acme Payments")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "backend")
	assert.Contains(t, output, "fintech")
	assert.Contains(t, output, "kubernetes")
}

func TestPrintJobAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobAnalysis_UnknownCompany(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(&types.JobAnalysis{Seniority: types.SeniorityMid, Business: types.BusinessUnknown})

	assert.Contains(t, buf.String(), "(unknown)")
}

func TestPrintPrecheck(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPrecheck(&types.PrecheckResult{
		Decision:       types.DecisionAbort,
		AvoidedDomains: []string{"gambling"},
		Violations: []types.Violation{
			{Type: "avoided_domain", Severity: "error", Details: "posting is in an avoided domain"},
		},
		Recommendations: []string{"Skip this application"},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPATIBILITY PRECHECK")
	assert.Contains(t, output, "ABORT")
	assert.Contains(t, output, "gambling")
	assert.Contains(t, output, "avoided_domain")
	assert.Contains(t, output, "Skip this application")
}

func TestPrintValidationReport_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(&types.ValidationReport{Passed: true})

	assert.Contains(t, buf.String(), "ALL VALIDATION CHECKS PASSED")
}

func TestPrintValidationReport_Violations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(&types.ValidationReport{
		Violations: []types.Violation{
			{Type: "fabricated_company", Severity: "error", Details: "mentions TechCorp", Artifact: "resume"},
			{Type: "low_ats_score", Severity: "warning", Details: "score 35 below threshold", Artifact: "cover_letter"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "VALIDATION REPORT")
	assert.Contains(t, output, "1 errors, 1 warnings")
	assert.Contains(t, output, "fabricated_company")
	assert.Contains(t, output, "[resume]")
	assert.Contains(t, output, "low_ats_score")
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScores(&types.ValidationReport{
		ATSScores: []types.ATSScore{
			{Artifact: "resume", Score: 72},
		},
		Styles: []types.StyleResult{
			{Artifact: "resume", HumanScore: 88},
			{Artifact: "linkedin_connection", HumanScore: 95},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ARTIFACT SCORES")
	assert.Contains(t, output, "resume")
	assert.Contains(t, output, "72")
	assert.Contains(t, output, "88")
	assert.Contains(t, output, "linkedin_connection")
	assert.Contains(t, output, "95")
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUsage(types.TokenUsage{PromptTokens: 1400, OutputTokens: 600, TotalTokens: 2000}, 0.0123)
	output := buf.String()

	assert.Contains(t, output, "LLM USAGE")
	assert.Contains(t, output, "1400")
	assert.Contains(t, output, "2000")
	assert.Contains(t, output, "$0.0123")
}
