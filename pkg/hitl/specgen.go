package hitl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/llm"
	"github.com/swarmstack/swarm/pkg/models"
)

// maxSpecParseRetries bounds how many schema-reminder turns the drafter
// appends when the model wraps or truncates the JSON.
const maxSpecParseRetries = 2

// parseSpecReply extracts and validates a drafted spec from a model
// reply.
func parseSpecReply(text string) (*models.Spec, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var spec models.Spec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("spec reply is not valid JSON: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// specToMap converts a spec into the JSON-shaped map the session row
// stores.
func specToMap(spec *models.Spec) (map[string]interface{}, error) {
	b, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// specFromMap reverses specToMap for stored drafts.
func specFromMap(m map[string]interface{}) (*models.Spec, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("no draft spec")
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var spec models.Spec
	if err := json.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("stored spec is malformed: %w", err)
	}
	return &spec, nil
}

// draftSpec runs one spec-producing conversation. When the reply does not
// parse as a valid spec, the broken reply and a schema reminder are
// appended and the model gets another shot, up to maxSpecParseRetries.
func (m *Machine) draftSpec(ctx context.Context, sess *ent.Session, userPrompt string) (*models.Spec, error) {
	msgs := []llm.Message{
		{Role: models.RoleSystem, Content: draftSystemPrompt},
		{Role: models.RoleUser, Content: userPrompt},
	}

	resp, err := m.complete(ctx, sess.ID, msgs)
	if err != nil {
		return nil, err
	}
	spec, parseErr := parseSpecReply(resp.Content)
	for attempt := 0; parseErr != nil && attempt < maxSpecParseRetries; attempt++ {
		msgs = append(msgs,
			llm.Message{Role: models.RoleAssistant, Content: resp.Content},
			llm.Message{Role: models.RoleUser, Content: parseReminder(draftOutputSchema)},
		)
		if resp, err = m.complete(ctx, sess.ID, msgs); err != nil {
			return nil, err
		}
		spec, parseErr = parseSpecReply(resp.Content)
	}
	if parseErr != nil {
		return nil, fault.Wrap(fault.Fatal, "hitl.draft", "model never produced a parsable spec", parseErr)
	}
	return spec, nil
}
