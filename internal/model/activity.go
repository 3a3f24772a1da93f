package model

// Activity represents an extracurricular activity students can join
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy independent of the receiver
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}

// HasParticipant returns true if email is already on the roster.
// Comparison is exact; callers own any normalization.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull returns true if the roster has reached capacity
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}
