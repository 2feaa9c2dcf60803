package reservation

// allowedTransitions maps a current status to the statuses reachable from it.
// Walk-ins may be seated straight from pending; a no-show can only be declared
// against a confirmed booking; seated guests cannot cancel, only complete or
// return to the confirmed pool via unseat. Terminal states have no targets.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusSeated, StatusCancelled},
	StatusConfirmed: {StatusSeated, StatusCancelled, StatusNoShow},
	StatusSeated:    {StatusConfirmed, StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransition reports whether a reservation may move from one status to
// another in a single lifecycle action.
func CanTransition(from, to Status) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// AssertTransition returns a typed InvalidTransitionError when the requested
// move is not in the transition table.
func AssertTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}
