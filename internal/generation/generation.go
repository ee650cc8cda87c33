// Package generation produces the four application artifacts by
// interpolating the profile, job analysis, and country conventions into
// prompt templates and making one LLM call per artifact. Each call is
// synchronous and unretried; failures surface to the caller.
package generation

import (
	"fmt"
	"strings"

	"github.com/arjunmehta/aply/internal/country"
	"github.com/arjunmehta/aply/internal/prompts"
	"github.com/arjunmehta/aply/internal/types"
)

// Input carries everything a generator needs for one artifact.
type Input struct {
	Profile  *types.Profile
	Analysis *types.JobAnalysis
	Country  types.CountryFormat
	JobText  string
}

// promptData builds the placeholder map shared by all artifact prompts.
func promptData(in *Input) map[string]string {
	return map[string]string{
		"ProfileFacts": RenderFacts(in.Profile),
		"JobText":      in.JobText,
		"Company":      orUnknown(in.Analysis.Company),
		"RoleTitle":    orUnknown(in.Analysis.RoleTitle),
		"Seniority":    string(in.Analysis.Seniority),
		"Keywords":     strings.Join(in.Analysis.Keywords, ", "),
		"CountryName":  in.Country.Name,
		"Tone":         in.Country.Tone,
		"Spelling":     in.Country.Spelling,
		"Greeting":     in.Country.Greeting,
		"Closing":      in.Country.Closing,
		"CountryNotes": strings.Join(in.Country.Notes, "; "),
		"MaxWords":     fmt.Sprintf("%d", in.Country.CoverLetterMaxWords),
		"CharLimit":    fmt.Sprintf("%d", in.Country.LinkedInCharLimit),
		"Name":         in.Profile.Name,
	}
}

// RenderFacts serializes the profile into the fact block fed to every
// prompt. Only what appears here may be claimed in generated content.
func RenderFacts(p *types.Profile) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name: %s\n", p.Name))
	if p.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", p.Headline))
	}
	if p.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", p.Location))
	}
	sb.WriteString(fmt.Sprintf("Years of experience: %d\n", p.YearsExperience))
	sb.WriteString("\nEmployment history:\n")
	for _, emp := range p.Employment {
		period := emp.StartDate
		if emp.EndDate != "" {
			period += " to " + emp.EndDate
		} else if period != "" {
			period += " to present"
		}
		sb.WriteString(fmt.Sprintf("- %s, %s", emp.Title, emp.Company))
		if period != "" {
			sb.WriteString(" (" + period + ")")
		}
		sb.WriteString("\n")
		for _, ach := range emp.Achievements {
			sb.WriteString("  * " + ach.Text + "\n")
		}
	}

	if len(p.Skills) > 0 {
		sb.WriteString("\nSkills: " + strings.Join(p.Skills, ", ") + "\n")
	}
	for _, edu := range p.Education {
		sb.WriteString(fmt.Sprintf("Education: %s, %s %s, %s\n",
			edu.Institution, edu.Degree, edu.Field, edu.Year))
	}

	if len(p.Facts.AvoidedDomains) > 0 {
		sb.WriteString("\nNever claim experience in: " +
			strings.Join(p.Facts.AvoidedDomains, ", ") + "\n")
	}

	return sb.String()
}

// buildPrompt loads a generation template and fills it for this input.
func buildPrompt(key string, in *Input) string {
	template := prompts.MustGet(key)
	return prompts.Format(template, promptData(in))
}

// postProcess applies the deterministic country adaptation pass.
func postProcess(text string, in *Input) string {
	return country.Adapt(strings.TrimSpace(text), in.Country)
}

func orUnknown(s string) string {
	if s == "" {
		return "(not stated)"
	}
	return s
}
