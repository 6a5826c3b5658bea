package domain

import "time"

// MeetingType distinguishes the regular assembly from ad-hoc gatherings.
type MeetingType string

const (
	MeetingGeneral   MeetingType = "GENERAL"
	MeetingEmergency MeetingType = "EMERGENCY"
	MeetingCommittee MeetingType = "COMMITTEE"
)

// Valid reports whether t is a known meeting type.
func (t MeetingType) Valid() bool {
	switch t {
	case MeetingGeneral, MeetingEmergency, MeetingCommittee:
		return true
	}
	return false
}

// MeetingStatus is the lifecycle state of a meeting.
type MeetingStatus string

const (
	MeetingScheduled  MeetingStatus = "SCHEDULED"
	MeetingInProgress MeetingStatus = "IN_PROGRESS"
	MeetingCompleted  MeetingStatus = "COMPLETED"
	MeetingCancelled  MeetingStatus = "CANCELLED"
)

// meetingTransitions defines the allowed state machine transitions.
var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingScheduled:  {MeetingInProgress, MeetingCancelled},
	MeetingInProgress: {MeetingCompleted, MeetingCancelled},
}

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	for _, allowed := range meetingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// VoteStatus is the state of a ballot question.
type VoteStatus string

const (
	VoteActive VoteStatus = "ACTIVE"
	VoteClosed VoteStatus = "CLOSED"
)

// Vote is a question put to the owners during a meeting. Ballots maps the
// voter's user ID to the option they chose; one ballot per voter. Results
// holds per-option tallies, fixed when the vote closes.
type Vote struct {
	ID       string            `json:"id"`
	Question string            `json:"question"`
	Options  []string          `json:"options"`
	Status   VoteStatus        `json:"status"`
	Ballots  map[string]string `json:"-"`
	Results  map[string]int    `json:"results,omitempty"`
}

// HasOption reports whether option is one of the vote's choices.
func (v *Vote) HasOption(option string) bool {
	for _, o := range v.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Tally counts ballots per option, including zero-count options.
func (v *Vote) Tally() map[string]int {
	results := make(map[string]int, len(v.Options))
	for _, o := range v.Options {
		results[o] = 0
	}
	for _, option := range v.Ballots {
		results[option]++
	}
	return results
}

// Meeting is an owners' assembly with an agenda and optional ballots.
type Meeting struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Location    string        `json:"location,omitempty"`
	Type        MeetingType   `json:"type"`
	Status      MeetingStatus `json:"status"`
	Agenda      []string      `json:"agenda,omitempty"`
	Votes       []*Vote       `json:"votes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// VoteByID returns the vote with the given id, or nil.
func (m *Meeting) VoteByID(id string) *Vote {
	for _, v := range m.Votes {
		if v.ID == id {
			return v
		}
	}
	return nil
}
