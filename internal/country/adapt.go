package country

import (
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// usToUK maps American spellings to British ones. Applied whole-word in both
// capitalizations; the reverse direction uses the same table.
var usToUK = map[string]string{
	"organize":    "organise",
	"organized":   "organised",
	"organizing":  "organising",
	"optimize":    "optimise",
	"optimized":   "optimised",
	"optimizing":  "optimising",
	"analyze":     "analyse",
	"analyzed":    "analysed",
	"prioritize":  "prioritise",
	"prioritized": "prioritised",
	"center":      "centre",
	"behavior":    "behaviour",
	"license":     "licence",
	"resume":      "CV",
}

// Adapt applies the country's string-level preferences to generated text:
// spelling variant substitutions and greeting normalization. Tone and length
// are handled at prompt time; this is the final deterministic pass.
func Adapt(text string, f types.CountryFormat) string {
	switch f.Spelling {
	case "en-GB":
		for us, uk := range usToUK {
			text = replaceWord(text, us, uk)
			text = replaceWord(text, capitalize(us), capitalize(uk))
		}
	case "en-US":
		for us, uk := range usToUK {
			if uk == "CV" {
				continue // "CV" is acceptable everywhere
			}
			text = replaceWord(text, uk, us)
			text = replaceWord(text, capitalize(uk), capitalize(us))
		}
	}

	// Normalize a generic greeting the model may fall back to.
	if f.Greeting != "" && f.Greeting != "Dear Hiring Manager," {
		text = strings.Replace(text, "Dear Hiring Manager,", f.Greeting, 1)
	}

	return text
}

// replaceWord substitutes old with new at word boundaries only.
func replaceWord(text, old, new string) string {
	var sb strings.Builder
	for {
		idx := strings.Index(text, old)
		if idx < 0 {
			sb.WriteString(text)
			return sb.String()
		}
		end := idx + len(old)
		atStart := idx == 0 || !isLetter(text[idx-1])
		atEnd := end >= len(text) || !isLetter(text[end])
		sb.WriteString(text[:idx])
		if atStart && atEnd {
			sb.WriteString(new)
		} else {
			sb.WriteString(old)
		}
		text = text[end:]
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
