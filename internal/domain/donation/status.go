package donation

import "errors"

// Status enumerates the lifecycle states of a donation listing.
type Status string

const (
	// StatusActive: listed and available. Initial state.
	StatusActive Status = "ACTIVE"
	// StatusRequested: a beneficiary expressed interest; the donor may
	// still withdraw the listing.
	StatusRequested Status = "REQUESTED"
	// StatusDonated: handoff confirmed by the beneficiary. Terminal.
	StatusDonated Status = "DONATED"
	// StatusInactive: the donor withdrew the listing. Terminal.
	StatusInactive Status = "INACTIVE"
)

var (
	ErrUnknownStatus     = errors.New("unknown donation status")
	ErrTerminalStatus    = errors.New("donation is in a terminal status")
	ErrIllegalTransition = errors.New("illegal donation status transition")
	// ErrStatusConflict: the stored status changed since it was last
	// read, so the requested transition no longer applies.
	ErrStatusConflict = errors.New("donation status changed since last read")
)

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusRequested, StatusDonated, StatusInactive:
		return Status(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

var allowedTransitions = map[Status][]Status{
	StatusActive:    {StatusRequested, StatusInactive},
	StatusRequested: {StatusDonated, StatusInactive},
	StatusDonated:   {},
	StatusInactive:  {},
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransition reports whether s -> next is a legal edge.
func (s Status) CanTransition(next Status) bool {
	for _, candidate := range allowedTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Transition validates the edge cur -> next. Callers check it before
// touching storage so that requests against terminal listings are
// rejected without any network round trip.
func Transition(cur, next Status) error {
	if _, err := ParseStatus(string(next)); err != nil {
		return err
	}
	if cur.Terminal() {
		return ErrTerminalStatus
	}
	if !cur.CanTransition(next) {
		return ErrIllegalTransition
	}
	return nil
}
