// Package report writes the per-application output files: the generated
// artifacts as plain text, the validation report as JSON, and an optional
// self-contained HTML page for reviewing and copying artifacts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arjunmehta/aply/internal/types"
)

// Artifact output filenames.
const (
	ResumeFile      = "resume.txt"
	CoverLetterFile = "cover_letter.txt"
	EmailFile       = "email_template.txt"
	LinkedInFile    = "linkedin_messages.txt"
	ValidationFile  = "validation_report.json"
	AnalysisFile    = "job_analysis.json"
	HTMLFile        = "report.html"
)

// Error represents a failure writing report output.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("report error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Run bundles everything a finished pipeline run produces, for writing.
type Run struct {
	Bundle     *types.ApplicationBundle
	Analysis   *types.JobAnalysis
	Validation *types.ValidationReport
	Country    *types.CountryFormat
	// GeneratedAt defaults to time.Now when zero.
	GeneratedAt time.Time
}

// WriteAll writes all output files for a run into outDir, creating the
// directory if needed. The HTML page is written only when includeHTML is set.
// It returns the list of paths written.
func WriteAll(run *Run, outDir string, includeHTML bool) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, &Error{Path: outDir, Message: "failed to create output directory", Cause: err}
	}

	if run.GeneratedAt.IsZero() {
		run.GeneratedAt = time.Now()
	}

	var written []string

	texts := map[string]string{
		ResumeFile:      run.Bundle.Resume,
		CoverLetterFile: run.Bundle.CoverLetter,
		EmailFile:       run.Bundle.Email,
		LinkedInFile: fmt.Sprintf("CONNECTION NOTE (%d chars):\n%s\n\nFOLLOW-UP (%d chars):\n%s\n",
			len(run.Bundle.LinkedIn.ConnectionNote), run.Bundle.LinkedIn.ConnectionNote,
			len(run.Bundle.LinkedIn.FollowUp), run.Bundle.LinkedIn.FollowUp),
	}
	for _, name := range []string{ResumeFile, CoverLetterFile, EmailFile, LinkedInFile} {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(texts[name]), 0o644); err != nil {
			return written, &Error{Path: path, Message: "failed to write artifact", Cause: err}
		}
		written = append(written, path)
	}

	for name, v := range map[string]any{
		ValidationFile: run.Validation,
		AnalysisFile:   run.Analysis,
	} {
		path := filepath.Join(outDir, name)
		if err := writeJSON(path, v); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if includeHTML {
		path := filepath.Join(outDir, HTMLFile)
		if err := WriteHTML(run, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &Error{Path: path, Message: "failed to marshal JSON", Cause: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &Error{Path: path, Message: "failed to write JSON", Cause: err}
	}
	return nil
}
