package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
)

// sessionStateRow seeds one row of the session_states reference table.
type sessionStateRow struct {
	state       string
	allowedNext []string
	terminal    bool
	description string
}

// sessionStateSeed is the canonical session lifecycle. The state machine
// loads this table at startup; rows are upserted so lifecycle changes ship
// as data updates alongside the code that understands them.
var sessionStateSeed = []sessionStateRow{
	{"input", []string{"clarifying", "ready_for_docs", "cancelled"}, false,
		"Prompt received; ready_for_docs is reachable directly when clarification is skipped"},
	{"clarifying", []string{"ready_for_docs", "cancelled", "failed"}, false,
		"Interactive question loop until coverage or turn budget is reached"},
	{"ready_for_docs", []string{"reviewing", "failed", "cancelled"}, false,
		"Enough context gathered; spec generation pending or retrying"},
	{"reviewing", []string{"approved", "ready_for_docs", "cancelled", "failed"}, false,
		"Human review gate; revision requests loop back through generation"},
	{"approved", []string{"building", "failed", "cancelled"}, false,
		"Spec accepted and frozen; ticket generation pending"},
	{"building", []string{"completed", "failed", "cancelled"}, false,
		"Tickets dispatched to agents"},
	{"completed", nil, true, "Every ticket terminal with at least one completed"},
	{"failed", nil, true, "Build finished with failed or permanently stuck tickets"},
	{"cancelled", nil, true, "Stopped on request"},
}

// SeedSessionStates upserts the session lifecycle reference rows. Idempotent;
// called after migrations on startup and from test setup.
func SeedSessionStates(ctx context.Context, db *stdsql.DB) error {
	const q = `INSERT INTO session_states (state, allowed_next, terminal, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (state) DO UPDATE SET
			allowed_next = EXCLUDED.allowed_next,
			terminal = EXCLUDED.terminal,
			description = EXCLUDED.description`

	for _, row := range sessionStateSeed {
		next, err := json.Marshal(row.allowedNext)
		if err != nil {
			return fmt.Errorf("failed to encode transitions for %s: %w", row.state, err)
		}
		if _, err := db.ExecContext(ctx, q, row.state, next, row.terminal, row.description); err != nil {
			return fmt.Errorf("failed to seed session state %s: %w", row.state, err)
		}
	}
	return nil
}
