package hitl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/swarmstack/swarm/pkg/models"
)

// Prompt construction for the clarification and drafting loops. Every
// prompt demands a single JSON object so parsing stays mechanical; the
// schema constants double as the reminder text when a reply fails to
// parse.

const clarifyOutputSchema = `Reply with a single JSON object and nothing else:
{
  "message": "what you say to the user next: questions, or a short confirmation",
  "gathered": {"<category>": {"<field>": "<fact the user stated this turn>"}},
  "progress": <your 0-100 estimate of requirement coverage>,
  "ready_for_spec": <true once you could draft a buildable spec from what you know>,
  "next_category": "<category that most needs attention next>"
}
Record only facts the user actually stated under "gathered". Never repeat
a question whose answer is already recorded there.`

const draftOutputSchema = `Reply with a single JSON object and nothing else:
{
  "title": "short product name",
  "summary": "one paragraph of what gets built",
  "goals": ["..."],
  "features": [
    {
      "id": "short-slug",
      "title": "...",
      "description": "what this feature does, concretely",
      "acceptance": [{"id": "slug-ac-1", "text": "statement a machine can verify"}]
    }
  ],
  "non_goals": ["..."],
  "risks": ["..."],
  "acceptance": ["end-to-end checks that span features"]
}
Every feature needs at least one acceptance criterion. Keep features
independently buildable; ordering constraints belong in the acceptance
text, not in the feature split.`

const draftSystemPrompt = `You are the spec writer for an automated build platform.
You turn a clarified product idea into a build specification that coding
agents execute feature by feature, with no access to the conversation
that produced it. Be concrete: name endpoints, data shapes, and limits
wherever the gathered context pins them down, and list open risks
instead of guessing.

` + draftOutputSchema

// clarifySystemPrompt frames the analyst role and enumerates the coverage
// categories with their weights so the model prioritizes the same gaps
// the coverage score does.
func clarifySystemPrompt(weights map[string]int, maxQuestions int) string {
	cats := make([]string, 0, len(weights))
	for cat := range weights {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	var sb strings.Builder
	sb.WriteString("You are the requirements analyst for an automated build platform. ")
	sb.WriteString("A user described software they want built; your job is to fill the gaps a coding agent would otherwise hit mid-build.\n\n")
	sb.WriteString("Requirement categories, with coverage weights:\n")
	for _, cat := range cats {
		fmt.Fprintf(&sb, "- %s (weight %d)\n", cat, weights[cat])
	}
	fmt.Fprintf(&sb, "\nAsk at most %d focused questions per turn, highest-value gaps first. ", maxQuestions)
	sb.WriteString("When the user declines to answer something, record the refusal and move on.\n\n")
	sb.WriteString(clarifyOutputSchema)
	return sb.String()
}

// clarifyTurnPrompt carries the user's reply plus the running state the
// model needs to pick its next questions.
func clarifyTurnPrompt(userText, gatheredJSON string, cov models.Coverage, turnsRemaining int, focus string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User reply:\n%s\n\n", userText)
	fmt.Fprintf(&sb, "Context gathered so far:\n%s\n\n", gatheredJSON)
	fmt.Fprintf(&sb, "Coverage: %d%%", cov.Total)
	if focus != "" {
		fmt.Fprintf(&sb, "; weakest category: %s", focus)
	}
	fmt.Fprintf(&sb, ". Turns remaining: %d.\n", turnsRemaining)
	return sb.String()
}

// draftUserPrompt assembles the drafting request from the original idea,
// the clarified context, and an optional analysis of the target repo.
func draftUserPrompt(initialPrompt, gatheredJSON, repoJSON string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original idea:\n%s\n\n", initialPrompt)
	fmt.Fprintf(&sb, "Clarified requirements:\n%s\n", gatheredJSON)
	if repoJSON != "" {
		fmt.Fprintf(&sb, "\nAnalysis of the existing repository:\n%s\n", repoJSON)
	}
	sb.WriteString("\nDraft the build specification now.")
	return sb.String()
}

// revisePrompt asks for a full replacement spec incorporating reviewer
// feedback.
func revisePrompt(specJSON, feedback string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Spec under review:\n%s\n\n", specJSON)
	fmt.Fprintf(&sb, "Reviewer feedback:\n%s\n\n", feedback)
	sb.WriteString("Produce the complete revised spec, not a diff. Keep everything the feedback does not touch.")
	return sb.String()
}

// parseReminder is appended as a corrective turn when a reply could not
// be parsed against its schema.
func parseReminder(schema string) string {
	return "Your previous reply could not be parsed. " + schema
}
