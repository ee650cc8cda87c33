// Package observability provides formatted console output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed posting.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:    %s\n", orUnknown(analysis.Company)))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", orUnknown(analysis.RoleTitle)))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", analysis.Seniority))
	sb.WriteString(fmt.Sprintf("Business:   %s\n", analysis.Business))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", analysis.WordCount))

	if len(analysis.FocusAreas) > 0 {
		sb.WriteString("\nFocus Areas:\n")
		writeList(&sb, analysis.FocusAreas, maxItemsToShow)
	}
	if len(analysis.Domains) > 0 {
		sb.WriteString("\nDomains:\n")
		writeList(&sb, analysis.Domains, maxItemsToShow)
	}
	if len(analysis.Keywords) > 0 {
		sb.WriteString("\nKeywords:\n")
		keywords := strings.Join(analysis.Keywords, ", ")
		for len(keywords) > boxWidth-6 {
			cut := strings.LastIndex(keywords[:boxWidth-6], ", ")
			if cut <= 0 {
				break
			}
			sb.WriteString("  " + keywords[:cut] + ",\n")
			keywords = keywords[cut+2:]
		}
		sb.WriteString("  " + keywords + "\n")
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrecheck outputs the pre-generation compatibility decision.
func (p *Printer) PrintPrecheck(result *types.PrecheckResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Decision: %s\n", decisionLabel(result.Decision)))

	if len(result.MatchedDomains) > 0 {
		sb.WriteString(fmt.Sprintf("Matched domains: %s\n", strings.Join(result.MatchedDomains, ", ")))
	}
	if len(result.AvoidedDomains) > 0 {
		sb.WriteString(fmt.Sprintf("Avoided domains: %s\n", strings.Join(result.AvoidedDomains, ", ")))
	}
	if len(result.FocusOverlap) > 0 {
		sb.WriteString(fmt.Sprintf("Focus overlap:   %s\n", strings.Join(result.FocusOverlap, ", ")))
	}

	if len(result.Violations) > 0 {
		sb.WriteString("\n")
		for _, v := range result.Violations {
			sb.WriteString(fmt.Sprintf("%s %s: %s\n", severityMark(v.Severity), v.Type, v.Details))
		}
	}
	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		writeList(&sb, result.Recommendations, maxItemsToShow)
	}

	p.printBox("COMPATIBILITY PRECHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs the post-generation validation summary.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	if len(report.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL VALIDATION CHECKS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors, %d warnings\n\n", report.ErrorCount(), report.WarningCount()))

	for i, v := range report.Violations {
		sb.WriteString(fmt.Sprintf("%s %s", severityMark(v.Severity), v.Type))
		if v.Artifact != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", v.Artifact))
		}
		sb.WriteString("\n")
		details := v.Details
		if len(details) > 50 {
			details = details[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(report.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION REPORT", sb.String())
}

// PrintScores outputs per-artifact ATS and style scores side by side.
func (p *Printer) PrintScores(report *types.ValidationReport) {
	if report == nil || (len(report.ATSScores) == 0 && len(report.Styles) == 0) {
		return
	}

	styleByArtifact := make(map[string]types.StyleResult, len(report.Styles))
	for _, s := range report.Styles {
		styleByArtifact[s.Artifact] = s
	}

	var sb strings.Builder
	for _, ats := range report.ATSScores {
		sb.WriteString(fmt.Sprintf("%-22s ATS %3d", ats.Artifact, ats.Score))
		if style, ok := styleByArtifact[ats.Artifact]; ok {
			sb.WriteString(fmt.Sprintf("   human %3d", style.HumanScore))
			delete(styleByArtifact, ats.Artifact)
		}
		sb.WriteString("\n")
	}
	// Style-only artifacts (LinkedIn messages skip ATS scoring).
	for _, s := range report.Styles {
		if _, remaining := styleByArtifact[s.Artifact]; remaining {
			sb.WriteString(fmt.Sprintf("%-22s ATS  --   human %3d\n", s.Artifact, s.HumanScore))
		}
	}

	p.printBox("ARTIFACT SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUsage outputs total token consumption and the estimated cost for a run.
func (p *Printer) PrintUsage(usage types.TokenUsage, costUSD float64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Prompt tokens:  %d\n", usage.PromptTokens))
	sb.WriteString(fmt.Sprintf("Output tokens:  %d\n", usage.OutputTokens))
	sb.WriteString(fmt.Sprintf("Total tokens:   %d\n", usage.TotalTokens))
	sb.WriteString(fmt.Sprintf("Est. cost:      $%.4f", costUSD))

	p.printBox("LLM USAGE", sb.String())
}

func writeList(sb *strings.Builder, items []string, limit int) {
	count := len(items)
	if count > limit {
		count = limit
	}
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func decisionLabel(d types.Decision) string {
	switch d {
	case types.DecisionProceed:
		return "✅ PROCEED"
	case types.DecisionProceedWithWarnings:
		return "⚠ PROCEED WITH WARNINGS"
	case types.DecisionAbort:
		return "⛔ ABORT"
	default:
		return string(d)
	}
}

func severityMark(severity string) string {
	if severity == "error" {
		return "✗"
	}
	return "⚠"
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}
