package jd

import (
	"sort"
	"strings"
)

// stopwords are excluded from ATS keyword extraction.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "in": true, "is": true, "it": true,
	"of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "their": true, "they": true, "this": true, "to": true,
	"we": true, "will": true, "with": true, "you": true, "your": true,
	"what": true, "who": true, "all": true, "about": true, "more": true,
	"us": true, "not": true, "can": true, "if": true, "do": true,
	"work": true, "working": true, "team": true, "role": true,
	"experience": true, "years": true, "skills": true, "ability": true,
	"strong": true, "join": true, "looking": true, "company": true,
	"job": true, "new": true, "across": true, "including": true,
	"plus": true, "etc": true, "such": true, "well": true, "also": true,
	"other": true, "within": true, "into": true, "per": true,
}

// multiWordTerms are domain terms extracted as a unit before single-word
// tokenization.
var multiWordTerms = []string{
	"machine learning", "deep learning", "data science", "computer vision",
	"natural language processing", "distributed systems", "data engineering",
	"data pipeline", "product management", "software engineering",
	"cloud native", "ci/cd", "version control", "unit testing",
	"cross-functional", "problem solving", "energy trading",
	"supply chain", "stakeholder management",
}

// minKeywordFrequency is the occurrence threshold for single-word keywords.
const minKeywordFrequency = 2

// maxKeywords caps the extracted list so ATS scoring stays stable across
// verbose postings.
const maxKeywords = 25

// ExtractKeywords pulls the ATS-relevant terms from a job description:
// known multi-word terms plus single words that repeat. The result is
// lowercase, deduplicated, and deterministically ordered.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	var keywords []string
	seen := make(map[string]bool)

	for _, term := range multiWordTerms {
		if strings.Contains(lower, term) && !seen[term] {
			keywords = append(keywords, term)
			seen[term] = true
		}
	}

	// Count single-word tokens.
	counts := make(map[string]int)
	var order []string
	for _, token := range wordPattern.FindAllString(lower, -1) {
		token = strings.Trim(token, "./-")
		if len(token) < 3 || stopwords[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// Keep repeated tokens, most frequent first; first-seen order breaks ties.
	var repeated []string
	for _, token := range order {
		if counts[token] >= minKeywordFrequency && !seen[token] {
			repeated = append(repeated, token)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return counts[repeated[i]] > counts[repeated[j]]
	})

	for _, token := range repeated {
		if len(keywords) >= maxKeywords {
			break
		}
		keywords = append(keywords, token)
		seen[token] = true
	}

	return keywords
}
