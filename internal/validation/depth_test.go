package validation

import (
	"strings"
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeWithBullets(n int) string {
	var sb strings.Builder
	sb.WriteString("EXPERIENCE\n\nSenior Engineer at Some Co\n")
	for i := 0; i < n; i++ {
		sb.WriteString("- Delivered a meaningful project outcome with measurable results for the business unit\n")
	}
	// Padding so the word-count floor is not the violation under test.
	sb.WriteString(strings.Repeat("Additional summary context about skills tools platforms and delivery. ", 20))
	return sb.String()
}

func TestCountBullets(t *testing.T) {
	text := "- one\n* two\n• three\nplain line\n  - indented"
	assert.Equal(t, 4, CountBullets(text))
}

func TestCheckDepth_BulletCountPerSeniority(t *testing.T) {
	tests := []struct {
		name      string
		seniority types.Seniority
		bullets   int
		wantFlag  bool
	}{
		{"Junior with few bullets ok", types.SeniorityJunior, 4, false},
		{"Senior with junior-level depth flagged", types.SenioritySenior, 4, true},
		{"Senior with enough bullets ok", types.SenioritySenior, 8, false},
		{"Too many bullets flagged", types.SeniorityMid, 12, true},
		{"Staff minimum", types.SeniorityStaff, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := CheckDepth("resume", resumeWithBullets(tt.bullets), tt.seniority)

			var flagged bool
			for _, v := range violations {
				if v.Type == "bullet_count" {
					flagged = true
				}
			}
			assert.Equal(t, tt.wantFlag, flagged)
		})
	}
}

func TestCheckDepth_WordCountFloor(t *testing.T) {
	violations := CheckDepth("email", "Hi, see attached.", types.SeniorityMid)
	require.Len(t, violations, 1)
	assert.Equal(t, "content_too_thin", violations[0].Type)
	assert.Equal(t, "warning", violations[0].Severity)
}

func TestCheckDepth_UnknownArtifactNoFloor(t *testing.T) {
	violations := CheckDepth("linkedin_connection", "short note", types.SeniorityMid)
	assert.Empty(t, violations)
}
