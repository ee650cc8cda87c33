package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arjunmehta/aply/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List tracked applications and LLM usage totals",
	RunE:  runHistory,
}

var (
	historyDBPath string
	historyLimit  int
	historyAppID  string
	historyStatus string
	historyEvent  string
	historyNotes  string
)

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", db.DefaultPath, "SQLite tracking database path")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum applications to list")
	historyCmd.Flags().StringVar(&historyAppID, "app", "", "Application ID to update or inspect")
	historyCmd.Flags().StringVar(&historyStatus, "set-status", "", "Update the application status (requires --app)")
	historyCmd.Flags().StringVar(&historyEvent, "add-event", "", "Record a tracking event, e.g. applied, response, interview, rejection (requires --app)")
	historyCmd.Flags().StringVar(&historyNotes, "notes", "", "Notes attached to --add-event")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	database, err := db.Open(ctx, historyDBPath)
	if err != nil {
		return fmt.Errorf("cannot open tracking database: %w", err)
	}
	defer func() { _ = database.Close() }()

	if historyAppID != "" {
		return handleApp(ctx, database)
	}

	apps, err := database.ListApplications(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No tracked applications yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tROLE\tCOUNTRY\tDECISION\tSTATUS\tCREATED")
	for _, app := range apps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(app.ID), app.Company, app.RoleTitle, app.Country,
			app.Decision, app.Status, app.CreatedAt.Format("2006-01-02"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	totals, err := database.GetUsageTotals(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nLLM usage: %d calls, %d tokens total, est. $%.4f\n",
		totals.Calls, totals.TotalTokens, totals.CostUSD)
	return nil
}

// handleApp serves the per-application subactions of the history command.
func handleApp(ctx context.Context, database *db.DB) error {
	appID, err := uuid.Parse(historyAppID)
	if err != nil {
		return fmt.Errorf("invalid application ID %q: %w", historyAppID, err)
	}

	if historyStatus != "" {
		if err := database.UpdateApplicationStatus(ctx, appID, historyStatus); err != nil {
			return err
		}
		fmt.Printf("Set status of %s to %s\n", shortID(appID), historyStatus)
	}
	if historyEvent != "" {
		if err := database.AddTrackingEvent(ctx, appID, historyEvent, historyNotes); err != nil {
			return err
		}
		fmt.Printf("Recorded %s event on %s\n", historyEvent, shortID(appID))
	}
	if historyStatus != "" || historyEvent != "" {
		return nil
	}

	app, err := database.GetApplication(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil {
		return fmt.Errorf("application %s not found", historyAppID)
	}

	fmt.Printf("%s — %s (%s)\nDecision: %s  Status: %s  Created: %s\n",
		app.Company, app.RoleTitle, app.Country,
		app.Decision, app.Status, app.CreatedAt.Format("2006-01-02 15:04"))

	events, err := database.ListTrackingEvents(ctx, appID)
	if err != nil {
		return err
	}
	for _, ev := range events {
		fmt.Printf("  %s  %s", ev.CreatedAt.Format("2006-01-02"), ev.EventType)
		if ev.Notes != "" {
			fmt.Printf(" — %s", ev.Notes)
		}
		fmt.Println()
	}
	return nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
