package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustGet_AllTaskKeys(t *testing.T) {
	for _, key := range []string{"resume", "cover-letter", "email", "linkedin-messages"} {
		tmpl := MustGet(key)
		assert.NotEmpty(t, tmpl, key)
		assert.Contains(t, tmpl, "{{.ProfileFacts}}", key)
	}
}

func TestMustGet_UnknownKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-task")
	})
}

func TestFormat(t *testing.T) {
	result := Format("Apply to {{.Company}} as {{.RoleTitle}}", map[string]string{
		"Company":   "Acme",
		"RoleTitle": "Engineer",
	})
	assert.Equal(t, "Apply to Acme as Engineer", result)
}

func TestFormat_UnmatchedPlaceholderStays(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestTemplatesCarryCountryPlaceholders(t *testing.T) {
	letter := MustGet("cover-letter")
	for _, placeholder := range []string{"{{.Greeting}}", "{{.Closing}}", "{{.Spelling}}", "{{.MaxWords}}"} {
		assert.True(t, strings.Contains(letter, placeholder), placeholder)
	}
}
