package types

// TokenUsage is the token accounting for a single LLM call.
type TokenUsage struct {
	PromptTokens int32 `json:"prompt_tokens"`
	OutputTokens int32 `json:"output_tokens"`
	TotalTokens  int32 `json:"total_tokens"`
}

// Add accumulates another usage record into this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// UsageRecord is the token usage for one generation task, recorded in the
// tracking store.
type UsageRecord struct {
	TaskType string     `json:"task_type"` // "resume", "cover_letter", "email", "linkedin"
	Model    string     `json:"model"`
	Usage    TokenUsage `json:"usage"`
}

// LinkedInMessages holds the outreach message pair generated for a role.
type LinkedInMessages struct {
	ConnectionNote string `json:"connection_note"`
	FollowUp       string `json:"follow_up"`
}

// ApplicationBundle is the full set of generated artifacts for one
// application.
type ApplicationBundle struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Country string `json:"country"`

	Resume      string           `json:"resume"`
	CoverLetter string           `json:"cover_letter"`
	Email       string           `json:"email"`
	LinkedIn    LinkedInMessages `json:"linkedin"`

	Usage []UsageRecord `json:"usage,omitempty"`
}

// Artifacts returns the named text artifacts for validation and reporting,
// in a stable order.
func (b *ApplicationBundle) Artifacts() []NamedArtifact {
	return []NamedArtifact{
		{Name: "resume", Text: b.Resume},
		{Name: "cover_letter", Text: b.CoverLetter},
		{Name: "email", Text: b.Email},
		{Name: "linkedin_connection", Text: b.LinkedIn.ConnectionNote},
		{Name: "linkedin_followup", Text: b.LinkedIn.FollowUp},
	}
}

// NamedArtifact pairs an artifact name with its generated text.
type NamedArtifact struct {
	Name string
	Text string
}

// TotalUsage sums token usage across every generation task in the bundle.
func (b *ApplicationBundle) TotalUsage() TokenUsage {
	var total TokenUsage
	for _, rec := range b.Usage {
		total.Add(rec.Usage)
	}
	return total
}
