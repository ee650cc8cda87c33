// Package pipeline provides the high-level orchestration for generating one
// application bundle. Steps run strictly in sequence; each LLM call depends
// on the previous step's output and aborts the run on failure.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arjunmehta/aply/internal/country"
	"github.com/arjunmehta/aply/internal/db"
	"github.com/arjunmehta/aply/internal/fetch"
	"github.com/arjunmehta/aply/internal/generation"
	"github.com/arjunmehta/aply/internal/jd"
	"github.com/arjunmehta/aply/internal/llm"
	"github.com/arjunmehta/aply/internal/observability"
	"github.com/arjunmehta/aply/internal/profile"
	"github.com/arjunmehta/aply/internal/report"
	"github.com/arjunmehta/aply/internal/types"
	"github.com/arjunmehta/aply/internal/validation"
)

// Options holds configuration for one pipeline run.
type Options struct {
	JDFile      string
	JDURL       string
	ProfilePath string
	Country     string
	// Company overrides the company name detected from the posting.
	Company string
	OutDir  string
	// DBPath enables usage tracking when non-empty.
	DBPath     string
	APIKey     string
	UseBrowser bool
	// Force continues generation even when the precheck says ABORT.
	Force      bool
	HTMLReport bool
	Verbose    bool

	// Client overrides the LLM client, used by tests. When nil a Gemini
	// client is built from APIKey.
	Client llm.Client
	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer
}

// Result collects everything a finished (or aborted) run produced.
type Result struct {
	Analysis      *types.JobAnalysis
	Precheck      *types.PrecheckResult
	Bundle        *types.ApplicationBundle
	Report        *types.ValidationReport
	OutDir        string
	Written       []string
	ApplicationID uuid.UUID
}

// AbortError is returned when the compatibility precheck rejects the posting
// and the run was not forced.
type AbortError struct {
	Precheck *types.PrecheckResult
}

func (e *AbortError) Error() string {
	reasons := make([]string, 0, len(e.Precheck.Violations))
	for _, v := range e.Precheck.Violations {
		reasons = append(reasons, v.Details)
	}
	return fmt.Sprintf("precheck aborted generation: %s (use --force to override)", strings.Join(reasons, "; "))
}

// Run executes the full generation pipeline.
func Run(ctx context.Context, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)
	result := &Result{}

	// Step 1: candidate profile
	fmt.Fprintf(out, "Step 1/8: Loading candidate profile...\n")
	prof, err := profile.Load(opts.ProfilePath)
	if err != nil {
		return result, fmt.Errorf("loading profile failed: %w", err)
	}

	// Step 2: job description
	jobText, err := acquireJobText(ctx, &opts, out)
	if err != nil {
		return result, err
	}

	// Step 3: analysis
	fmt.Fprintf(out, "Step 3/8: Analyzing job description...\n")
	analysis := jd.Analyze(jobText)
	if opts.Company != "" {
		analysis.Company = opts.Company
	}
	result.Analysis = analysis
	if opts.Verbose {
		printer.PrintJobAnalysis(analysis)
	}

	// Step 4: compatibility precheck
	fmt.Fprintf(out, "Step 4/8: Running compatibility precheck...\n")
	precheck := validation.Precheck(prof, analysis)
	result.Precheck = precheck
	if opts.Verbose {
		printer.PrintPrecheck(precheck)
	}
	if precheck.Decision == types.DecisionAbort && !opts.Force {
		return result, &AbortError{Precheck: precheck}
	}
	if precheck.Decision == types.DecisionAbort {
		fmt.Fprintf(out, "Precheck said ABORT; continuing because --force is set\n")
	}

	// Step 5: country conventions
	format := country.Lookup(opts.Country)
	fmt.Fprintf(out, "Step 5/8: Using %s application conventions\n", format.Name)

	// Step 6: generation, one artifact at a time
	client := opts.Client
	if client == nil {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return result, fmt.Errorf("creating LLM client failed: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	bundle, err := generate(ctx, client, &generation.Input{
		Profile:  prof,
		Analysis: analysis,
		Country:  format,
		JobText:  jobText,
	}, out)
	if err != nil {
		return result, err
	}
	bundle.Country = format.Code
	result.Bundle = bundle

	// Step 7: validation
	fmt.Fprintf(out, "Step 7/8: Validating generated artifacts...\n")
	validationReport := validation.ValidateBundle(bundle, prof, analysis)
	validationReport.Precheck = precheck
	result.Report = validationReport
	printer.PrintValidationReport(validationReport)
	if opts.Verbose {
		printer.PrintScores(validationReport)
	}

	// Step 8: outputs
	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Join("output", slug(bundle.Company))
	}
	fmt.Fprintf(out, "Step 8/8: Writing output to %s...\n", outDir)
	written, err := report.WriteAll(&report.Run{
		Bundle:     bundle,
		Analysis:   analysis,
		Validation: validationReport,
		Country:    &format,
	}, outDir, opts.HTMLReport)
	if err != nil {
		return result, err
	}
	result.OutDir = outDir
	result.Written = written

	// Tracking store is best-effort: a broken DB never loses a generated
	// bundle that is already on disk.
	if opts.DBPath != "" {
		if err := record(ctx, &opts, result, out); err != nil {
			fmt.Fprintf(out, "Warning: failed to record application: %v\n", err)
		}
	}

	printer.PrintUsage(bundle.TotalUsage(), totalCost(bundle))

	return result, nil
}

// acquireJobText reads the posting from a file or fetches it from a URL.
func acquireJobText(ctx context.Context, opts *Options, out io.Writer) (string, error) {
	if opts.JDURL != "" {
		fmt.Fprintf(out, "Step 2/8: Fetching job description from %s...\n", opts.JDURL)
		fetchOpts := fetch.DefaultOptions()
		fetchOpts.AllowBrowser = opts.UseBrowser
		fetchOpts.Verbose = opts.Verbose
		fetched, err := fetch.JobText(ctx, opts.JDURL, fetchOpts)
		if err != nil {
			return "", fmt.Errorf("fetching job description failed: %w", err)
		}
		if fetched.Rendered && opts.Verbose {
			fmt.Fprintf(out, "[VERBOSE] posting required browser rendering (%s)\n", fetched.Platform)
		}
		return fetched.Text, nil
	}

	fmt.Fprintf(out, "Step 2/8: Reading job description from %s...\n", opts.JDFile)
	data, err := os.ReadFile(opts.JDFile)
	if err != nil {
		return "", fmt.Errorf("reading job description failed: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("job description file %s is empty", opts.JDFile)
	}
	return string(data), nil
}

// generate produces the four artifacts in a fixed order.
func generate(ctx context.Context, client llm.Client, in *generation.Input, out io.Writer) (*types.ApplicationBundle, error) {
	bundle := &types.ApplicationBundle{
		Company: in.Analysis.Company,
		Role:    in.Analysis.RoleTitle,
	}

	fmt.Fprintf(out, "Step 6/8: Generating artifacts...\n")

	fmt.Fprintf(out, "  • résumé\n")
	resume, usage, err := generation.Resume(ctx, client, in)
	if err != nil {
		return nil, err
	}
	bundle.Resume = resume
	bundle.Usage = append(bundle.Usage, usage)

	fmt.Fprintf(out, "  • cover letter\n")
	coverLetter, usage, err := generation.CoverLetter(ctx, client, in)
	if err != nil {
		return nil, err
	}
	bundle.CoverLetter = coverLetter
	bundle.Usage = append(bundle.Usage, usage)

	fmt.Fprintf(out, "  • email template\n")
	email, usage, err := generation.Email(ctx, client, in)
	if err != nil {
		return nil, err
	}
	bundle.Email = email
	bundle.Usage = append(bundle.Usage, usage)

	fmt.Fprintf(out, "  • LinkedIn messages\n")
	linkedin, usage, err := generation.LinkedIn(ctx, client, in)
	if err != nil {
		return nil, err
	}
	bundle.LinkedIn = linkedin
	bundle.Usage = append(bundle.Usage, usage)

	return bundle, nil
}

// record persists the run to the tracking store.
func record(ctx context.Context, opts *Options, result *Result, out io.Writer) error {
	database, err := db.Open(ctx, opts.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	appID, err := database.CreateApplication(ctx,
		result.Bundle.Company, result.Bundle.Role, result.Bundle.Country,
		string(result.Precheck.Decision))
	if err != nil {
		return err
	}
	result.ApplicationID = appID

	for _, artifact := range result.Bundle.Artifacts() {
		if _, err := database.SaveContentVersion(ctx, appID, artifact.Name, artifact.Text); err != nil {
			return err
		}
	}
	for _, rec := range result.Bundle.Usage {
		if err := database.RecordUsage(ctx, appID, rec); err != nil {
			return err
		}
	}
	if err := database.RecordQualityMetrics(ctx, appID, result.Report); err != nil {
		return err
	}

	if opts.Verbose {
		fmt.Fprintf(out, "[VERBOSE] recorded application %s\n", appID)
	}
	return nil
}

func totalCost(bundle *types.ApplicationBundle) float64 {
	var cost float64
	for _, rec := range bundle.Usage {
		cost += llm.EstimateCost(rec.Model, rec.Usage.PromptTokens, rec.Usage.OutputTokens)
	}
	return cost
}

// slug builds a filesystem-friendly directory name from a company name.
func slug(company string) string {
	if company == "" {
		return "application"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(company) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteRune('_')
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "application"
	}
	return s
}
