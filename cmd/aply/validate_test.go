package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunmehta/aply/internal/validation"
)

func TestParseLinkedIn(t *testing.T) {
	content := `CONNECTION NOTE (24 chars):
Hi, I saw your posting.

FOLLOW-UP (25 chars):
Following up on my note.
Still interested.
`

	messages := parseLinkedIn(content)

	assert.Equal(t, "Hi, I saw your posting.", messages.ConnectionNote)
	assert.Equal(t, "Following up on my note.\nStill interested.", messages.FollowUp)
}

func TestReadAnalysisMissingFile(t *testing.T) {
	_, err := readAnalysis(filepath.Join(t.TempDir(), "job_analysis.json"))
	require.Error(t, err)

	var readErr *validation.FileReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestParseLinkedInEmpty(t *testing.T) {
	messages := parseLinkedIn("")
	assert.Empty(t, messages.ConnectionNote)
	assert.Empty(t, messages.FollowUp)
}
