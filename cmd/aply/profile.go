package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunmehta/aply/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and validate the candidate profile",
	Long: `Loads the candidate profile (embedded default or --profile), validates it
against the profile schema, and prints a summary. Useful after editing the
profile JSON by hand.`,
	RunE: runProfile,
}

var (
	profilePath string
	profileJSON bool
)

func init() {
	profileCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to profile JSON (defaults to the embedded profile)")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Print the full profile as JSON")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	prof, err := profile.Load(profilePath)
	if err != nil {
		return err
	}

	if profileJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(prof)
	}

	fmt.Printf("%s — %s (%d years)\n", prof.Name, prof.Headline, prof.YearsExperience)
	fmt.Printf("Location: %s\n\n", prof.Location)

	fmt.Println("Employment:")
	for _, emp := range prof.Employment {
		fmt.Printf("  %s — %s (%d achievements)\n", emp.Company, emp.Title, len(emp.Achievements))
	}

	fmt.Printf("\nReal companies:       %s\n", strings.Join(prof.Facts.RealCompanies, ", "))
	fmt.Printf("Fabricated (banned):  %s\n", strings.Join(prof.Facts.FabricatedCompanies, ", "))
	fmt.Printf("Verified metrics:     %s\n", strings.Join(prof.Facts.RealMetrics, ", "))
	fmt.Printf("Avoided domains:      %s\n", strings.Join(prof.Facts.AvoidedDomains, ", "))

	fmt.Println("\n✅ Profile is valid.")
	return nil
}
