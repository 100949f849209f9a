package models

// Quest is a one-shot task scoped to a sub-project of the platform.
type Quest struct {
	ID          string `json:"id"`
	Project     string `json:"project"`
	Description string `json:"description"`
	Reward      Reward `json:"reward"`
}

// Reward describes what a quest pays out once claimed.
type Reward struct {
	Amount Amount `json:"amount"`
}

// SkipSet is an immutable set of quest identifiers that are never started or
// claimed.
type SkipSet map[string]struct{}

// NewSkipSet builds a [SkipSet] from a list of quest ids.
func NewSkipSet(ids ...string) SkipSet {
	s := make(SkipSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id belongs to the set. A nil set contains nothing.
func (s SkipSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}
