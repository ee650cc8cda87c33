// Package jd provides deterministic keyword bucketing of free-text job
// descriptions. No LLM is involved: the same input always produces the same
// analysis, which drives the pre-generation compatibility check and the ATS
// overlap score.
package jd

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// focusBuckets maps a technical focus bucket to its trigger keywords.
var focusBuckets = map[string][]string{
	"ai_ml": {
		"machine learning", "ml", "deep learning", "llm", "nlp",
		"computer vision", "pytorch", "tensorflow", "generative ai",
		"data science",
	},
	"backend": {
		"backend", "back-end", "microservices", "api", "rest", "grpc",
		"distributed systems", "golang", "java", "kafka",
	},
	"frontend": {
		"frontend", "front-end", "react", "typescript", "css", "ui",
	},
	"data": {
		"data engineering", "etl", "data pipeline", "spark", "warehouse",
		"airflow", "dbt", "analytics",
	},
	"platform": {
		"kubernetes", "terraform", "devops", "sre", "infrastructure",
		"ci/cd", "aws", "gcp", "azure", "platform engineering",
	},
	"mobile": {
		"ios", "android", "swift", "kotlin", "mobile",
	},
	"product": {
		"product management", "product manager", "roadmap", "stakeholder",
		"product strategy", "discovery",
	},
}

// domainBuckets maps an industry bucket to its trigger keywords. These feed
// the avoided-domain mismatch check.
var domainBuckets = map[string][]string{
	"fintech":        {"fintech", "payments", "banking", "trading platform", "lending"},
	"energy_trading": {"energy trading", "power trading", "commodity trading", "energy markets", "ppa"},
	"healthcare":     {"healthcare", "medical", "clinical", "patient", "health tech"},
	"e_commerce":     {"e-commerce", "ecommerce", "marketplace", "retail", "checkout"},
	"gambling":       {"gambling", "betting", "casino", "igaming"},
	"defense":        {"defense", "defence", "military", "weapons"},
	"logistics":      {"logistics", "supply chain", "freight", "fulfillment"},
	"adtech":         {"adtech", "ad tech", "programmatic advertising", "dsp"},
	"crypto":         {"crypto", "blockchain", "web3", "defi"},
}

// b2bKeywords and b2cKeywords classify the business model.
var (
	b2bKeywords = []string{
		"b2b", "enterprise customers", "saas", "enterprise sales",
		"business customers", "clients", "enterprise-grade",
	}
	b2cKeywords = []string{
		"b2c", "consumer", "end users", "millions of users", "app store",
		"customer-facing app", "shoppers",
	}
)

// seniorityPatterns are checked in order; the first match wins.
var seniorityPatterns = []struct {
	level    types.Seniority
	patterns []string
}{
	{types.SeniorityStaff, []string{"staff engineer", "staff software", "principal"}},
	{types.SeniorityLead, []string{"lead engineer", "tech lead", "team lead", "engineering manager", "head of"}},
	{types.SenioritySenior, []string{"senior", "sr.", "sr ", "5+ years", "6+ years", "7+ years", "8+ years"}},
	{types.SeniorityJunior, []string{"junior", "entry level", "entry-level", "graduate", "intern", "0-2 years"}},
}

var (
	companyLinePattern = regexp.MustCompile(`(?im)^(?:company|employer|about)\s*:\s*(.+)$`)
	atCompanyPattern   = regexp.MustCompile(`\b[Aa]t\s+([A-Z][A-Za-z0-9&.\-]+(?:\s+[A-Z][A-Za-z0-9&.\-]+){0,2})`)
	roleLinePattern    = regexp.MustCompile(`(?im)^(?:role|position|title|job title)\s*:\s*(.+)$`)
	wordPattern        = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#./-]*`)
)

// Analyze buckets a job description into focus areas, industry domains,
// business model, and seniority, and guesses the company and role title.
func Analyze(text string) *types.JobAnalysis {
	lower := strings.ToLower(text)

	analysis := &types.JobAnalysis{
		Company:   guessCompany(text),
		RoleTitle: guessRole(text),
		Seniority: detectSeniority(lower),
		Business:  detectBusinessModel(lower),
		WordCount: len(wordPattern.FindAllString(text, -1)),
	}

	analysis.FocusAreas = matchBuckets(lower, focusBuckets)
	analysis.Domains = matchBuckets(lower, domainBuckets)
	analysis.Keywords = ExtractKeywords(text)

	return analysis
}

// matchBuckets returns the bucket names whose keyword lists match the text,
// sorted for determinism.
func matchBuckets(lower string, buckets map[string][]string) []string {
	var matched []string
	for name, keywords := range buckets {
		for _, kw := range keywords {
			if containsKeyword(lower, kw) {
				matched = append(matched, name)
				break
			}
		}
	}
	sort.Strings(matched)
	return matched
}

// containsKeyword matches a keyword at word boundaries so that "ml" does not
// match inside "html".
func containsKeyword(lower, keyword string) bool {
	idx := 0
	for {
		pos := strings.Index(lower[idx:], keyword)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(keyword)
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			return true
		}
		idx = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordChar(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	return !isWordChar(s[i])
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// detectSeniority returns the first matching level, defaulting to mid.
func detectSeniority(lower string) types.Seniority {
	for _, entry := range seniorityPatterns {
		for _, p := range entry.patterns {
			if strings.Contains(lower, p) {
				return entry.level
			}
		}
	}
	return types.SeniorityMid
}

// detectBusinessModel counts keyword hits on each side; ties are unknown.
func detectBusinessModel(lower string) types.BusinessModel {
	b2b, b2c := 0, 0
	for _, kw := range b2bKeywords {
		if strings.Contains(lower, kw) {
			b2b++
		}
	}
	for _, kw := range b2cKeywords {
		if strings.Contains(lower, kw) {
			b2c++
		}
	}
	switch {
	case b2b > b2c:
		return types.BusinessB2B
	case b2c > b2b:
		return types.BusinessB2C
	default:
		return types.BusinessUnknown
	}
}

// guessCompany looks for an explicit "Company:" line first, then falls back
// to an "at <Name>" phrase.
func guessCompany(text string) string {
	if m := companyLinePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := atCompanyPattern.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		// Filter common false positives like "at Senior" or "at least".
		first := strings.ToLower(strings.Fields(candidate)[0])
		switch first {
		case "least", "the", "senior", "scale", "a", "an", "our", "this":
			return ""
		}
		return candidate
	}
	return ""
}

// guessRole looks for an explicit "Role:" line, then falls back to the first
// non-empty line if it looks like a job title.
func guessRole(text string) string {
	if m := roleLinePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		// Header lines like "Company: Acme" are not titles.
		if line == "" || companyLinePattern.MatchString(line) {
			continue
		}
		// A title line is short and has no sentence punctuation.
		if len(line) <= 60 && !strings.ContainsAny(line, ".!?") {
			return line
		}
		break
	}
	return ""
}
