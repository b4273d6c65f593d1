package provision

import "fmt"

// Status classifies what happened to one project. Promotion to moderator
// never affects the status: a group whose leader could not be promoted is
// still a success.
type Status int

const (
	StatusSuccess Status = iota
	StatusLeaderNotFound
	StatusGroupCreationFailed
	StatusMembershipFailed
)

// String returns the human label used in the run summary.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "created"
	case StatusLeaderNotFound:
		return "leader not found"
	case StatusGroupCreationFailed:
		return "group creation failed"
	case StatusMembershipFailed:
		return "adding leader failed"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Outcome records what happened to one roster entry. Exactly one Outcome
// is produced per entry, in roster order, and never mutated afterwards.
type Outcome struct {
	Project  string
	Leader   string // resolved student name, or the roster text when unresolved
	Status   Status
	GroupID  int
	GroupURL string

	// Moderator reports whether the leader ended up as group moderator.
	// Only a label: promotion failure does not downgrade Status.
	Moderator bool
}

// Summary collects the outcomes of one run.
type Summary struct {
	Outcomes []Outcome
}

// Succeeded returns the outcomes with StatusSuccess.
func (s *Summary) Succeeded() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusSuccess {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes with any failure status.
func (s *Summary) Failed() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Status != StatusSuccess {
			out = append(out, o)
		}
	}
	return out
}

// SuccessRate returns the fraction of successful projects in percent.
// An empty run counts as zero.
func (s *Summary) SuccessRate() float64 {
	if len(s.Outcomes) == 0 {
		return 0
	}
	return float64(len(s.Succeeded())) / float64(len(s.Outcomes)) * 100
}
