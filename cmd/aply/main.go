// Package main provides the aply CLI: tailored job application bundles
// (résumé, cover letter, email, LinkedIn messages) from a job description.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aply",
	Short: "Generate tailored job application bundles",
	Long: `aply turns a job description and a target country into a complete
application bundle: résumé, cover letter, outreach email, and LinkedIn
messages, validated against the candidate's fact sheet before anything
is written.`,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// apiKeyOrEnv resolves the Gemini API key from a flag value or the
// GEMINI_API_KEY environment variable.
func apiKeyOrEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
