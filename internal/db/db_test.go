package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "aply_applications.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Schema applied: inserts succeed.
	_, err = db.CreateApplication(ctx, "Acme", "Engineer", "germany", "PROCEED")
	assert.NoError(t, err)
}

func TestCreateAndGetApplication(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	id, err := db.CreateApplication(ctx, "Acme", "Senior Engineer", "uk", "PROCEED_WITH_WARNINGS")
	require.NoError(t, err)

	app, err := db.GetApplication(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, "Senior Engineer", app.RoleTitle)
	assert.Equal(t, "uk", app.Country)
	assert.Equal(t, "PROCEED_WITH_WARNINGS", app.Decision)
	assert.Equal(t, "generated", app.Status)
}

func TestGetApplication_NotFound(t *testing.T) {
	db := testDB(t)

	app, err := db.GetApplication(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestListApplications(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	for _, company := range []string{"One", "Two", "Three"} {
		_, err := db.CreateApplication(ctx, company, "Engineer", "usa", "PROCEED")
		require.NoError(t, err)
	}

	apps, err := db.ListApplications(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	all, err := db.ListApplications(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	id, err := db.CreateApplication(ctx, "Acme", "Engineer", "usa", "PROCEED")
	require.NoError(t, err)

	require.NoError(t, db.UpdateApplicationStatus(ctx, id, "applied"))

	app, err := db.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "applied", app.Status)

	err = db.UpdateApplicationStatus(ctx, uuid.New(), "applied")
	assert.Error(t, err)
}

func TestSaveContentVersion_Increments(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	id, err := db.CreateApplication(ctx, "Acme", "Engineer", "usa", "PROCEED")
	require.NoError(t, err)

	v1, err := db.SaveContentVersion(ctx, id, "resume", "first draft")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)

	v2, err := db.SaveContentVersion(ctx, id, "resume", "second draft")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)

	// A different artifact starts at version 1 again.
	cv, err := db.SaveContentVersion(ctx, id, "cover_letter", "letter")
	require.NoError(t, err)
	assert.Equal(t, 1, cv.Version)
}

func TestTrackingEvents(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	id, err := db.CreateApplication(ctx, "Acme", "Engineer", "usa", "PROCEED")
	require.NoError(t, err)

	require.NoError(t, db.AddTrackingEvent(ctx, id, "generated", ""))
	require.NoError(t, db.AddTrackingEvent(ctx, id, "applied", "via portal"))

	events, err := db.ListTrackingEvents(ctx, id)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "generated", events[0].EventType)
	assert.Equal(t, "applied", events[1].EventType)
	assert.Equal(t, "via portal", events[1].Notes)
}

func TestRecordUsageAndTotals(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	id, err := db.CreateApplication(ctx, "Acme", "Engineer", "usa", "PROCEED")
	require.NoError(t, err)

	recs := []types.UsageRecord{
		{TaskType: "resume", Model: "gemini-2.5-pro", Usage: types.TokenUsage{PromptTokens: 1000, OutputTokens: 500, TotalTokens: 1500}},
		{TaskType: "email", Model: "gemini-2.5-flash", Usage: types.TokenUsage{PromptTokens: 400, OutputTokens: 100, TotalTokens: 500}},
	}
	for _, rec := range recs {
		require.NoError(t, db.RecordUsage(ctx, id, rec))
	}

	totals, err := db.GetUsageTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Calls)
	assert.Equal(t, int64(1400), totals.PromptTokens)
	assert.Equal(t, int64(600), totals.OutputTokens)
	assert.Equal(t, int64(2000), totals.TotalTokens)
	assert.Positive(t, totals.CostUSD)
}

func TestRecordQualityMetrics(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	id, err := db.CreateApplication(ctx, "Acme", "Engineer", "usa", "PROCEED")
	require.NoError(t, err)

	report := &types.ValidationReport{
		ATSScores: []types.ATSScore{{Artifact: "resume", Score: 72}},
		Styles:    []types.StyleResult{{Artifact: "resume", HumanScore: 88}},
		Violations: []types.Violation{
			{Type: "unverified_metric", Severity: "warning"},
		},
	}
	require.NoError(t, db.RecordQualityMetrics(ctx, id, report))

	var count int
	err = db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quality_metrics WHERE application_id = ?`, id.String()).Scan(&count)
	require.NoError(t, err)
	// Two scores plus error and warning counters.
	assert.Equal(t, 4, count)
}

