package db

import (
	"context"
	"fmt"

	"github.com/arjunmehta/aply/internal/llm"
	"github.com/arjunmehta/aply/internal/types"
	"github.com/google/uuid"
)

// RecordUsage stores one LLM call's token accounting with its estimated
// cost.
func (db *DB) RecordUsage(ctx context.Context, appID uuid.UUID, rec types.UsageRecord) error {
	cost := llm.EstimateCost(rec.Model, rec.Usage.PromptTokens, rec.Usage.OutputTokens)
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO llm_usage (application_id, task_type, model, prompt_tokens, output_tokens, total_tokens, cost_usd)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		appID.String(), rec.TaskType, rec.Model,
		rec.Usage.PromptTokens, rec.Usage.OutputTokens, rec.Usage.TotalTokens, cost)
	if err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// GetUsageTotals aggregates token and cost usage across all applications.
func (db *DB) GetUsageTotals(ctx context.Context) (*UsageTotals, error) {
	var totals UsageTotals
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(prompt_tokens), 0),
		        COALESCE(SUM(output_tokens), 0),
		        COALESCE(SUM(total_tokens), 0),
		        COALESCE(SUM(cost_usd), 0)
		 FROM llm_usage`,
	).Scan(&totals.Calls, &totals.PromptTokens, &totals.OutputTokens,
		&totals.TotalTokens, &totals.CostUSD)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage totals: %w", err)
	}
	return &totals, nil
}

// RecordQualityMetrics stores the report's numeric outcomes: ATS scores,
// human-likeness scores, violation counts.
func (db *DB) RecordQualityMetrics(ctx context.Context, appID uuid.UUID, report *types.ValidationReport) error {
	insert := func(metric string, value float64) error {
		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO quality_metrics (application_id, metric, value) VALUES (?, ?, ?)`,
			appID.String(), metric, value)
		return err
	}

	for _, s := range report.ATSScores {
		if err := insert("ats_"+s.Artifact, float64(s.Score)); err != nil {
			return fmt.Errorf("failed to record quality metric: %w", err)
		}
	}
	for _, s := range report.Styles {
		if err := insert("human_"+s.Artifact, float64(s.HumanScore)); err != nil {
			return fmt.Errorf("failed to record quality metric: %w", err)
		}
	}
	if err := insert("violations_error", float64(report.ErrorCount())); err != nil {
		return fmt.Errorf("failed to record quality metric: %w", err)
	}
	if err := insert("violations_warning", float64(report.WarningCount())); err != nil {
		return fmt.Errorf("failed to record quality metric: %w", err)
	}
	return nil
}
