// Package country provides per-country tone and format preferences for
// generated application content.
package country

import (
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// DefaultCode is the fallback country when the requested one is not
// supported.
const DefaultCode = "usa"

// formats is the supported country table, keyed by lowercase code.
var formats = map[string]types.CountryFormat{
	"usa": {
		Code:                "usa",
		Name:                "United States",
		Tone:                "confident",
		Spelling:            "en-US",
		Greeting:            "Dear Hiring Manager,",
		Closing:             "Best regards,",
		DateFormat:          "January 2, 2006",
		CoverLetterMaxWords: 350,
		LinkedInCharLimit:   300,
		Notes: []string{
			"lead with measurable impact",
			"no photo, no date of birth",
		},
	},
	"uk": {
		Code:                "uk",
		Name:                "United Kingdom",
		Tone:                "measured",
		Spelling:            "en-GB",
		Greeting:            "Dear Hiring Manager,",
		Closing:             "Kind regards,",
		DateFormat:          "2 January 2006",
		CoverLetterMaxWords: 300,
		LinkedInCharLimit:   300,
		Notes: []string{
			"understate rather than oversell",
			"CV is the expected term, not resume",
		},
	},
	"germany": {
		Code:                "germany",
		Name:                "Germany",
		Tone:                "formal",
		Spelling:            "en-GB",
		Greeting:            "Dear Sir or Madam,",
		Closing:             "Mit freundlichen Grüßen,",
		DateFormat:          "02.01.2006",
		CoverLetterMaxWords: 400,
		LinkedInCharLimit:   400,
		Notes: []string{
			"formal register throughout",
			"mention notice period and earliest start date",
		},
	},
	"netherlands": {
		Code:                "netherlands",
		Name:                "Netherlands",
		Tone:                "direct",
		Spelling:            "en-GB",
		Greeting:            "Dear Hiring Team,",
		Closing:             "Kind regards,",
		DateFormat:          "02-01-2006",
		CoverLetterMaxWords: 300,
		LinkedInCharLimit:   400,
		Notes: []string{
			"be direct, skip superlatives",
			"short CVs are the norm",
		},
	},
	"switzerland": {
		Code:                "switzerland",
		Name:                "Switzerland",
		Tone:                "formal",
		Spelling:            "en-GB",
		Greeting:            "Dear Sir or Madam,",
		Closing:             "Best regards,",
		DateFormat:          "02.01.2006",
		CoverLetterMaxWords: 400,
		LinkedInCharLimit:   400,
		Notes: []string{
			"precision and completeness are valued",
			"state work-permit status explicitly",
		},
	},
	"india": {
		Code:                "india",
		Name:                "India",
		Tone:                "respectful",
		Spelling:            "en-GB",
		Greeting:            "Dear Hiring Manager,",
		Closing:             "Warm regards,",
		DateFormat:          "02/01/2006",
		CoverLetterMaxWords: 350,
		LinkedInCharLimit:   300,
		Notes: []string{
			"include current and expected notice period",
		},
	},
}

// Lookup returns the format for the given country string. Matching is
// case-insensitive and tolerant of common aliases; an unsupported country
// falls back to the default.
func Lookup(name string) types.CountryFormat {
	key := normalize(name)
	if f, ok := formats[key]; ok {
		return f
	}
	return formats[DefaultCode]
}

// Supported reports whether the country string maps to a configured format.
func Supported(name string) bool {
	_, ok := formats[normalize(name)]
	return ok
}

// Codes returns the supported country codes in no particular order.
func Codes() []string {
	codes := make([]string, 0, len(formats))
	for code := range formats {
		codes = append(codes, code)
	}
	return codes
}

// normalize lowercases and resolves aliases like "US" or "United Kingdom".
func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "us", "united states", "america":
		return "usa"
	case "gb", "united kingdom", "great britain", "england":
		return "uk"
	case "de", "deutschland":
		return "germany"
	case "nl", "holland":
		return "netherlands"
	case "ch", "swiss":
		return "switzerland"
	case "in":
		return "india"
	}
	return key
}
