package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunmehta/aply/internal/fetch"
	"github.com/arjunmehta/aply/internal/jd"
	"github.com/arjunmehta/aply/internal/observability"
	"github.com/arjunmehta/aply/internal/profile"
	"github.com/arjunmehta/aply/internal/validation"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description without generating anything",
	Long: `Runs the deterministic job description analysis and the profile
compatibility precheck, then prints the result. No LLM calls are made and
nothing is written except optional JSON output.`,
	RunE: runAnalyze,
}

var (
	analyzeJDFile     string
	analyzeJDURL      string
	analyzeProfile    string
	analyzeUseBrowser bool
	analyzeJSON       bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd-file", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to profile JSON (defaults to the embedded profile)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON instead of boxes")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if (analyzeJDFile == "") == (analyzeJDURL == "") {
		return fmt.Errorf("exactly one of --jd-file or --jd-url is required")
	}

	var jobText string
	if analyzeJDURL != "" {
		opts := fetch.DefaultOptions()
		opts.AllowBrowser = analyzeUseBrowser
		fetched, err := fetch.JobText(ctx, analyzeJDURL, opts)
		if err != nil {
			return err
		}
		jobText = fetched.Text
	} else {
		data, err := os.ReadFile(analyzeJDFile)
		if err != nil {
			return fmt.Errorf("reading job description failed: %w", err)
		}
		jobText = string(data)
	}
	if strings.TrimSpace(jobText) == "" {
		return fmt.Errorf("job description is empty")
	}

	prof, err := profile.Load(analyzeProfile)
	if err != nil {
		return err
	}

	analysis := jd.Analyze(jobText)
	precheck := validation.Precheck(prof, analysis)

	if analyzeJSON {
		out := map[string]any{
			"analysis": analysis,
			"precheck": precheck,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobAnalysis(analysis)
	printer.PrintPrecheck(precheck)
	return nil
}
