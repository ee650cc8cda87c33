// Package profile loads and validates the candidate's ground-truth record.
// A default profile is embedded; a different one can be loaded from disk.
// The profile is validated twice: shape against a JSON Schema, then field
// constraints via struct tags.
package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.json
var defaultProfileJSON []byte

//go:embed schema.json
var profileSchemaJSON []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the embedded profile. It panics if the embedded data is
// invalid, which can only happen from a bad build.
func Default() *types.Profile {
	p, err := parse(defaultProfileJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}
	return p
}

// Load reads and validates a profile from a JSON file. An empty path returns
// the embedded default.
func Load(path string) (*types.Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read profile file %s", path),
			Cause:   err,
		}
	}

	return parse(data)
}

// parse validates raw JSON against the schema and struct tags, then
// normalizes the fact sheet.
func parse(data []byte) (*types.Profile, error) {
	schemaLoader := gojsonschema.NewBytesLoader(profileSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to run schema validation",
			Cause:   err,
		}
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, &SchemaError{Issues: issues}
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to parse profile JSON",
			Cause:   err,
		}
	}

	if err := validate.Struct(&p); err != nil {
		return nil, &LoadError{
			Message: "profile failed field validation",
			Cause:   err,
		}
	}

	normalize(&p)
	return &p, nil
}

// normalize dedupes and trims the fact-sheet lists, and guarantees that every
// employer in the history is on the real-company allowlist.
func normalize(p *types.Profile) {
	p.Facts.RealCompanies = dedupe(p.Facts.RealCompanies)
	p.Facts.FabricatedCompanies = dedupe(p.Facts.FabricatedCompanies)
	p.Facts.AvoidedDomains = dedupe(p.Facts.AvoidedDomains)

	seen := make(map[string]bool, len(p.Facts.RealCompanies))
	for _, c := range p.Facts.RealCompanies {
		seen[strings.ToLower(c)] = true
	}
	for _, emp := range p.Employment {
		if !seen[strings.ToLower(emp.Company)] {
			p.Facts.RealCompanies = append(p.Facts.RealCompanies, emp.Company)
			seen[strings.ToLower(emp.Company)] = true
		}
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
