package types

// CountryFormat holds the per-country tone and format preferences applied to
// generated content.
type CountryFormat struct {
	Code     string `json:"code"` // lowercase key, e.g. "germany"
	Name     string `json:"name"`
	Tone     string `json:"tone"`     // e.g. "formal", "direct", "conversational"
	Spelling string `json:"spelling"` // "en-US" or "en-GB"

	Greeting   string `json:"greeting"`
	Closing    string `json:"closing"`
	DateFormat string `json:"date_format"`

	// CoverLetterMaxWords caps cover letter length.
	CoverLetterMaxWords int `json:"cover_letter_max_words"`
	// LinkedInCharLimit caps each LinkedIn message; messages are trimmed
	// to this length at a word boundary.
	LinkedInCharLimit int `json:"linkedin_char_limit"`

	// Notes are free-text conventions fed into the prompts,
	// e.g. "include a photo is customary" or "no personal details".
	Notes []string `json:"notes,omitempty"`
}
