package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// CreateApplication inserts a new application row and returns its ID.
func (db *DB) CreateApplication(ctx context.Context, company, roleTitle, country, decision string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO applications (id, company, role_title, country, decision)
		 VALUES (?, ?, ?, ?, ?)`,
		id.String(), company, roleTitle, country, decision)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves one application by ID. Returns nil when not found.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var app Application
	var idStr string
	var roleTitle sql.NullString

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, company, role_title, country, decision, status, created_at
		 FROM applications WHERE id = ?`, id.String(),
	).Scan(&idStr, &app.Company, &roleTitle, &app.Country, &app.Decision, &app.Status, &app.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	app.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid application id %q: %w", idStr, err)
	}
	app.RoleTitle = roleTitle.String
	return &app, nil
}

// ListApplications returns applications newest first, up to limit.
func (db *DB) ListApplications(ctx context.Context, limit int) ([]Application, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, company, role_title, country, decision, status, created_at
		 FROM applications ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var apps []Application
	for rows.Next() {
		var app Application
		var idStr string
		var roleTitle sql.NullString
		if err := rows.Scan(&idStr, &app.Company, &roleTitle, &app.Country,
			&app.Decision, &app.Status, &app.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		app.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid application id %q: %w", idStr, err)
		}
		app.RoleTitle = roleTitle.String
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus transitions the application's status field.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE applications SET status = ? WHERE id = ?`, status, id.String())
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("application %s not found", id)
	}
	return nil
}

// SaveContentVersion stores an artifact revision. The version number is one
// more than the highest stored version for the same artifact.
func (db *DB) SaveContentVersion(ctx context.Context, appID uuid.UUID, artifact, content string) (*ContentVersion, error) {
	var maxVersion sql.NullInt64
	err := db.conn.QueryRowContext(ctx,
		`SELECT MAX(version) FROM content_versions WHERE application_id = ? AND artifact = ?`,
		appID.String(), artifact).Scan(&maxVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to read content versions: %w", err)
	}

	cv := &ContentVersion{
		ID:            uuid.New(),
		ApplicationID: appID,
		Artifact:      artifact,
		Version:       int(maxVersion.Int64) + 1,
		Content:       content,
	}
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO content_versions (id, application_id, artifact, version, content)
		 VALUES (?, ?, ?, ?, ?)`,
		cv.ID.String(), appID.String(), artifact, cv.Version, content)
	if err != nil {
		return nil, fmt.Errorf("failed to save content version: %w", err)
	}
	return cv, nil
}

// AddTrackingEvent appends a lifecycle event for an application.
func (db *DB) AddTrackingEvent(ctx context.Context, appID uuid.UUID, eventType, notes string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO tracking_events (application_id, event_type, notes)
		 VALUES (?, ?, ?)`,
		appID.String(), eventType, notes)
	if err != nil {
		return fmt.Errorf("failed to add tracking event: %w", err)
	}
	return nil
}

// ListTrackingEvents returns the events for one application, oldest first.
func (db *DB) ListTrackingEvents(ctx context.Context, appID uuid.UUID) ([]TrackingEvent, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, application_id, event_type, COALESCE(notes, ''), created_at
		 FROM tracking_events WHERE application_id = ? ORDER BY id`,
		appID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []TrackingEvent
	for rows.Next() {
		var ev TrackingEvent
		var appIDStr string
		if err := rows.Scan(&ev.ID, &appIDStr, &ev.EventType, &ev.Notes, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tracking event: %w", err)
		}
		ev.ApplicationID, err = uuid.Parse(appIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid application id %q: %w", appIDStr, err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
