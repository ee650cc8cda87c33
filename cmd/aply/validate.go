package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunmehta/aply/internal/observability"
	"github.com/arjunmehta/aply/internal/profile"
	"github.com/arjunmehta/aply/internal/report"
	"github.com/arjunmehta/aply/internal/types"
	"github.com/arjunmehta/aply/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <output-dir>",
	Short: "Re-validate a previously generated application bundle",
	Long: `Reads the artifacts from an output directory (after manual edits, for
example), re-runs every validation check against the job analysis stored
alongside them, and rewrites validation_report.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateProfilePath string

func init() {
	validateCmd.Flags().StringVarP(&validateProfilePath, "profile", "p", "", "Path to profile JSON (defaults to the embedded profile)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	outDir := args[0]

	prof, err := profile.Load(validateProfilePath)
	if err != nil {
		return err
	}

	analysis, err := readAnalysis(filepath.Join(outDir, report.AnalysisFile))
	if err != nil {
		return err
	}

	bundle, err := readBundle(outDir, analysis)
	if err != nil {
		return err
	}

	validationReport := validation.ValidateBundle(bundle, prof, analysis)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintValidationReport(validationReport)
	printer.PrintScores(validationReport)

	data, err := json.MarshalIndent(validationReport, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation report: %w", err)
	}
	reportPath := filepath.Join(outDir, report.ValidationFile)
	if err := os.WriteFile(reportPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", reportPath, err)
	}
	fmt.Fprintf(os.Stdout, "Updated %s\n", reportPath)

	if !validationReport.Passed {
		return fmt.Errorf("validation failed with %d error(s)", validationReport.ErrorCount())
	}
	return nil
}

func readAnalysis(path string) (*types.JobAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &validation.FileReadError{
			Message: "cannot read job analysis (was this directory generated by aply?)",
			Cause:   err,
		}
	}
	var analysis types.JobAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return &analysis, nil
}

func readBundle(outDir string, analysis *types.JobAnalysis) (*types.ApplicationBundle, error) {
	readText := func(name string) (string, error) {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			return "", &validation.FileReadError{
				Message: "cannot read artifact " + name,
				Cause:   err,
			}
		}
		return string(data), nil
	}

	bundle := &types.ApplicationBundle{
		Company: analysis.Company,
		Role:    analysis.RoleTitle,
	}

	var err error
	if bundle.Resume, err = readText(report.ResumeFile); err != nil {
		return nil, err
	}
	if bundle.CoverLetter, err = readText(report.CoverLetterFile); err != nil {
		return nil, err
	}
	if bundle.Email, err = readText(report.EmailFile); err != nil {
		return nil, err
	}

	linkedin, err := readText(report.LinkedInFile)
	if err != nil {
		return nil, err
	}
	bundle.LinkedIn = parseLinkedIn(linkedin)

	return bundle, nil
}

// parseLinkedIn recovers the message pair from the labeled text file
// written at generation time.
func parseLinkedIn(content string) types.LinkedInMessages {
	var messages types.LinkedInMessages
	var current *string

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "CONNECTION NOTE"):
			current = &messages.ConnectionNote
		case strings.HasPrefix(line, "FOLLOW-UP"):
			current = &messages.FollowUp
		case current != nil:
			if *current != "" {
				*current += "\n"
			}
			*current += line
		}
	}

	messages.ConnectionNote = strings.TrimSpace(messages.ConnectionNote)
	messages.FollowUp = strings.TrimSpace(messages.FollowUp)
	return messages
}
