package todo

import "time"

// transitions lists every allowed status change. Done has no way out.
var transitions = map[Status][]Status{
	StatusOpen:    {StatusDone, StatusOverdue},
	StatusOverdue: {StatusDone},
	StatusDone:    nil,
}

// Transition checks that a todo may move from one status to another.
func Transition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return invalid(ErrInvalidTransition, "%s -> %s", from, to)
}

// IsExpired reports whether now is strictly past the todo's expiry.
func IsExpired(item Todo, now time.Time) bool {
	return now.After(Expiry(item))
}

// refresh marks an open, expired todo overdue. It reports whether it changed.
func refresh(item *Todo, now time.Time) bool {
	if item.Status != StatusOpen || !IsExpired(*item, now) {
		return false
	}
	item.Status = StatusOverdue
	return true
}

// complete returns the done copy of item and, for recurring todos, its
// successor.
func complete(item Todo) (Todo, *Todo, error) {
	if !item.Status.IsCompletable() {
		return Todo{}, nil, Transition(item.Status, StatusDone)
	}

	done := item
	done.Status = StatusDone

	next, ok := NextOccurrence(item)
	if !ok {
		return done, nil, nil
	}
	successor := Todo{
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   next,
		Status:      StatusOpen,
		Lifespan:    item.Lifespan,
		Lifecycle:   item.Lifecycle,
	}
	return done, &successor, nil
}
