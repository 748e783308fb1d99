package event

import "time"

type Type string

const (
	EncounterStarted  Type = "encounter_started"
	EncounterFinished Type = "encounter_finished"
	ActionUsed        Type = "action_used"
	MemberDown        Type = "member_down"
	MemberRaised      Type = "member_raised"
)

// Event is one session occurrence worth telling listeners about.
type Event struct {
	Type       Type
	SessionID  string
	Message    string
	OccurredAt time.Time
}

func New(t Type, sessionID, message string) Event {
	return Event{
		Type:       t,
		SessionID:  sessionID,
		Message:    message,
		OccurredAt: time.Now(),
	}
}
