package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunmehta/aply/internal/config"
	"github.com/arjunmehta/aply/internal/db"
	"github.com/arjunmehta/aply/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full generation pipeline for one job posting",
	Long: `Reads a job description from a file or URL, analyzes it, checks it against
the candidate profile, and generates the full application bundle for the
target country.

Configuration can be loaded from a JSON file using --config. Command-line
flags override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath string
	genJDFile     string
	genJDURL      string
	genProfile    string
	genCountry    string
	genCompany    string
	genOutDir     string
	genDBPath     string
	genAPIKey     string
	genUseBrowser bool
	genForce      bool
	genHTML       bool
	genVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&genJDFile, "jd-file", "j", "", "Path to job description text file (mutually exclusive with --jd-url)")
	generateCmd.Flags().StringVar(&genJDURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd-file)")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to profile JSON (defaults to the embedded profile)")
	generateCmd.Flags().StringVarP(&genCountry, "country", "c", "usa", "Target country for application conventions")
	generateCmd.Flags().StringVar(&genCompany, "company", "", "Company name override when detection fails")
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", "", "Output directory (defaults to output/<company>)")
	generateCmd.Flags().StringVar(&genDBPath, "db", db.DefaultPath, "SQLite tracking database path (empty disables tracking)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().BoolVar(&genUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	generateCmd.Flags().BoolVar(&genForce, "force", false, "Generate even when the precheck says ABORT")
	generateCmd.Flags().BoolVar(&genHTML, "html", false, "Also write a self-contained HTML report")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCmd)
}

// generateDefaults returns the program-level defaults applied beneath the
// config file and flags.
func generateDefaults() config.Config {
	return config.Config{
		Country: "usa",
		DBPath:  db.DefaultPath,
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if genVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Program defaults fill whatever the config file left empty; explicit
	// flags override both below.
	cfg = cfg.MergeWithDefaults(generateDefaults())

	// Flags override config file values only when explicitly set.
	if cmd.Flags().Changed("jd-file") {
		cfg.JDFile = genJDFile
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = genJDURL
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = genProfile
	}
	if cmd.Flags().Changed("country") {
		cfg.Country = genCountry
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = genCompany
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = genOutDir
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = genDBPath
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = genUseBrowser
	}
	if cmd.Flags().Changed("force") {
		cfg.Force = genForce
	}
	if cmd.Flags().Changed("html") {
		cfg.HTMLReport = genHTML
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	if cfg.JDFile == "" && cfg.JDURL == "" {
		return fmt.Errorf("a job description is required: use --jd-file or --jd-url")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := apiKeyOrEnv(cfg.APIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or use --api-key)")
	}

	result, err := pipeline.Run(ctx, pipeline.Options{
		JDFile:      cfg.JDFile,
		JDURL:       cfg.JDURL,
		ProfilePath: cfg.Profile,
		Country:     cfg.Country,
		Company:     cfg.Company,
		OutDir:      cfg.OutDir,
		DBPath:      cfg.DBPath,
		APIKey:      apiKey,
		UseBrowser:  cfg.UseBrowser,
		Force:       cfg.Force,
		HTMLReport:  cfg.HTMLReport,
		Verbose:     cfg.Verbose,
	})

	var abortErr *pipeline.AbortError
	if errors.As(err, &abortErr) {
		fmt.Fprintf(os.Stdout, "\n⛔ %v\n", abortErr)
		os.Exit(2)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n✅ Application bundle written to %s (%d files)\n", result.OutDir, len(result.Written))
	if !result.Report.Passed {
		fmt.Fprintf(os.Stdout, "⚠ Validation found %d error(s) and %d warning(s); review %s\n",
			result.Report.ErrorCount(), result.Report.WarningCount(), result.OutDir)
	}
	return nil
}
