package notify

import (
	"fmt"
	"time"
)

// maxFieldLength caps free-text payload fields so a runaway agent error
// never turns a notification into a megabyte POST.
const maxFieldLength = 2000

// Message is the JSON body delivered to the ops webhook.
type Message struct {
	Event       string       `json:"event"`
	SessionID   string       `json:"session_id"`
	ProjectName string       `json:"project_name,omitempty"`
	State       string       `json:"state,omitempty"`
	SpecTitle   string       `json:"spec_title,omitempty"`
	SpecVersion int          `json:"spec_version,omitempty"`
	Summary     string       `json:"summary"`
	Error       string       `json:"error,omitempty"`
	Tickets     *TicketTally `json:"tickets,omitempty"`
	URL         string       `json:"url,omitempty"`
	Timestamp   string       `json:"timestamp"`
}

// TicketTally summarizes where a finished build's tickets ended up.
type TicketTally struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

var stateSummary = map[string]string{
	"completed": "Build completed",
	"failed":    "Build failed",
	"cancelled": "Session cancelled",
}

func sessionURL(dashboardURL, sessionID string) string {
	if dashboardURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/sessions/%s", dashboardURL, sessionID)
}

func buildApprovalMessage(in ApprovalRequiredInput, dashboardURL string) Message {
	return Message{
		Event:       EventApprovalRequired,
		SessionID:   in.SessionID,
		ProjectName: in.ProjectName,
		State:       "reviewing",
		SpecTitle:   truncateField(in.SpecTitle),
		SpecVersion: in.SpecVersion,
		Summary:     fmt.Sprintf("Spec v%d awaits human review: %s", in.SpecVersion, truncateField(in.SpecTitle)),
		URL:         sessionURL(dashboardURL, in.SessionID),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func buildFinishedMessage(in SessionFinishedInput, dashboardURL string) Message {
	summary := stateSummary[in.State]
	if summary == "" {
		summary = "Session " + in.State
	}
	return Message{
		Event:       EventSessionFinished,
		SessionID:   in.SessionID,
		ProjectName: in.ProjectName,
		State:       in.State,
		Summary:     summary,
		Error:       truncateField(in.Error),
		Tickets:     in.Tickets,
		URL:         sessionURL(dashboardURL, in.SessionID),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func truncateField(text string) string {
	if len(text) <= maxFieldLength {
		return text
	}
	return text[:maxFieldLength] + "... (truncated)"
}
