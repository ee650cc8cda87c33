package validation

import (
	"github.com/arjunmehta/aply/internal/types"
)

// ValidateBundle runs every post-generation check over the bundle's text
// artifacts and aggregates the result. The report's Passed flag is false
// only on error-severity violations; warnings leave it true so a human can
// still decide to send.
func ValidateBundle(bundle *types.ApplicationBundle, p *types.Profile, analysis *types.JobAnalysis) *types.ValidationReport {
	report := &types.ValidationReport{
		Company: bundle.Company,
		Country: bundle.Country,
	}

	for _, artifact := range bundle.Artifacts() {
		if artifact.Text == "" {
			report.Violations = append(report.Violations, types.Violation{
				Type:     "empty_artifact",
				Severity: "error",
				Details:  "artifact was not generated",
				Artifact: artifact.Name,
			})
			continue
		}

		// The fabrication denylist applies to every artifact; the
		// real-employer requirement only to the resume and cover letter.
		if artifact.Name == "resume" || artifact.Name == "cover_letter" {
			report.Violations = append(report.Violations, CheckFacts(artifact.Name, artifact.Text, p)...)
		} else {
			report.Violations = append(report.Violations, CheckFabricated(artifact.Name, artifact.Text, p)...)
		}

		report.Violations = append(report.Violations, CheckDepth(artifact.Name, artifact.Text, analysis.Seniority)...)

		report.ATSScores = append(report.ATSScores, ScoreATS(artifact.Name, artifact.Text, analysis.Keywords))
		report.Styles = append(report.Styles, CheckStyle(artifact.Name, artifact.Text))
	}

	report.Violations = append(report.Violations, ATSViolations(report.ATSScores)...)
	report.Violations = append(report.Violations, StyleViolations(report.Styles)...)

	report.Passed = report.ErrorCount() == 0

	return report
}
