// Package prompts holds the artifact prompt templates. They are embedded as
// a single JSON file keyed by task ("resume", "cover-letter", "email",
// "linkedin-messages") and interpolated with {{.Key}} placeholders.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed generation.json
var generationJSON []byte

var (
	loadOnce  sync.Once
	templates map[string]string
)

func load() map[string]string {
	loadOnce.Do(func() {
		if err := json.Unmarshal(generationJSON, &templates); err != nil {
			panic(fmt.Sprintf("embedded prompt file is invalid: %v", err))
		}
	})
	return templates
}

// MustGet returns the prompt template for a task key. The templates ship
// with the binary, so a missing key is a programming error and panics.
func MustGet(key string) string {
	tmpl, ok := load()[key]
	if !ok {
		panic(fmt.Sprintf("no prompt template for task %q", key))
	}
	return tmpl
}

// Format substitutes {{.Key}} placeholders with values from data. Unmatched
// placeholders are left in place, which makes a broken prompt visible in
// the generated output.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}
