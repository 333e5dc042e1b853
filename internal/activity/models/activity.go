package models

// Activity is a single extracurricular offering.
//
// Invariants:
//   - Participants holds no duplicate emails
//   - Participants order is sign-up order; removal preserves the rest
//   - MaxParticipants is informational and never enforced at signup
//
// The activity catalog is fixed at startup; only rosters mutate.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy so store callers never share roster slices.
func (a Activity) Clone() Activity {
	a.Participants = append([]string{}, a.Participants...)
	return a
}

// ActivityView pairs an Activity with its name for ordered listings; the
// embedded fields flatten into the same JSON object.
type ActivityView struct {
	Name string `json:"name"`
	Activity
}
