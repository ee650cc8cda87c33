package generation

import (
	"context"
	"encoding/json"

	"github.com/arjunmehta/aply/internal/llm"
	"github.com/arjunmehta/aply/internal/types"
)

// Resume generates the tailored plain-text resume.
func Resume(ctx context.Context, client llm.Client, in *Input) (string, types.UsageRecord, error) {
	return textArtifact(ctx, client, in, "resume", llm.TierAdvanced)
}

// CoverLetter generates the cover letter in the country's register.
func CoverLetter(ctx context.Context, client llm.Client, in *Input) (string, types.UsageRecord, error) {
	return textArtifact(ctx, client, in, "cover_letter", llm.TierAdvanced)
}

// Email generates the short application email.
func Email(ctx context.Context, client llm.Client, in *Input) (string, types.UsageRecord, error) {
	return textArtifact(ctx, client, in, "email", llm.TierStandard)
}

// promptKeys maps task types to their template keys in generation.json.
var promptKeys = map[string]string{
	"resume":       "resume",
	"cover_letter": "cover-letter",
	"email":        "email",
	"linkedin":     "linkedin-messages",
}

func textArtifact(ctx context.Context, client llm.Client, in *Input, task string, tier llm.ModelTier) (string, types.UsageRecord, error) {
	prompt := buildPrompt(promptKeys[task], in)

	resp, err := client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", types.UsageRecord{}, &GenerateError{
			Task:    task,
			Message: "LLM call failed",
			Cause:   err,
		}
	}

	usage := types.UsageRecord{TaskType: task, Model: resp.Model, Usage: resp.Usage}
	return postProcess(resp.Text, in), usage, nil
}

// LinkedIn generates the outreach message pair. The model returns JSON; both
// messages are then trimmed to the country's character ceiling.
func LinkedIn(ctx context.Context, client llm.Client, in *Input) (types.LinkedInMessages, types.UsageRecord, error) {
	prompt := buildPrompt(promptKeys["linkedin"], in)

	resp, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.LinkedInMessages{}, types.UsageRecord{}, &GenerateError{
			Task:    "linkedin",
			Message: "LLM call failed",
			Cause:   err,
		}
	}

	var msgs types.LinkedInMessages
	if err := json.Unmarshal([]byte(resp.Text), &msgs); err != nil {
		return types.LinkedInMessages{}, types.UsageRecord{}, &GenerateError{
			Task:    "linkedin",
			Message: "failed to parse messages JSON",
			Cause:   err,
		}
	}

	limit := in.Country.LinkedInCharLimit
	msgs.ConnectionNote = TrimToLimit(postProcess(msgs.ConnectionNote, in), limit)
	msgs.FollowUp = TrimToLimit(postProcess(msgs.FollowUp, in), limit)

	usage := types.UsageRecord{TaskType: "linkedin", Model: resp.Model, Usage: resp.Usage}
	return msgs, usage, nil
}
