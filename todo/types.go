// Package todo implements a personal todo tracker with recurring todos.
//
// Todos live in a single JSON document on disk. A Store holds the active and
// completed todos for one load-mutate-save session; Update and View wrap that
// session in an advisory file lock so concurrent invocations cannot lose
// each other's writes.
//
// Active todos are addressed by their zero-based position. Positions shift
// whenever a todo before them is removed or completed, so an index is only
// meaningful within the session that produced it.
//
// The public API mirrors the CLI commands:
//   - Add, Remove, Complete, Edit for mutations
//   - Active, Completed, Get for querying
//   - RefreshStatuses for deriving overdue state
package todo

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status represents the state of a todo.
type Status string

const (
	// StatusOpen indicates the todo is within its lifespan and not completed.
	StatusOpen Status = "Open"

	// StatusDone indicates the todo has been completed.
	StatusDone Status = "Done"

	// StatusOverdue indicates the todo outlived its lifespan without being completed.
	StatusOverdue Status = "Overdue"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusOpen, StatusDone, StatusOverdue}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsCompletable returns true when a todo in this status may be completed.
func (s Status) IsCompletable() bool {
	switch s {
	case StatusOpen, StatusOverdue:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status name case-insensitively.
func ParseStatus(value string) (Status, error) {
	s, ok := parseEnum(value, ValidStatuses())
	if !ok {
		return "", invalid(ErrInvalidStatus, "%q (want %s)", value, joinEnum(ValidStatuses()))
	}
	return s, nil
}

// UnmarshalJSON rejects unknown statuses.
func (s *Status) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, ParseStatus)
}

// Unit is the calendar unit of a lifespan.
type Unit string

const (
	UnitDay   Unit = "Day"
	UnitWeek  Unit = "Week"
	UnitMonth Unit = "Month"
	UnitYear  Unit = "Year"
)

// ValidUnits returns all valid lifespan units.
func ValidUnits() []Unit {
	return []Unit{UnitDay, UnitWeek, UnitMonth, UnitYear}
}

// IsValid returns true if the unit is a known valid value.
func (u Unit) IsValid() bool {
	for _, valid := range ValidUnits() {
		if u == valid {
			return true
		}
	}
	return false
}

// ParseUnit parses a unit name case-insensitively.
// Short forms (d, w, m, y) and plurals are accepted.
func ParseUnit(value string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if alias, ok := unitAliases[normalized]; ok {
		return alias, nil
	}
	u, ok := parseEnum(value, ValidUnits())
	if !ok {
		return "", invalid(ErrInvalidUnit, "%q (want %s)", value, joinEnum(ValidUnits()))
	}
	return u, nil
}

var unitAliases = map[string]Unit{
	"d":      UnitDay,
	"days":   UnitDay,
	"w":      UnitWeek,
	"weeks":  UnitWeek,
	"m":      UnitMonth,
	"months": UnitMonth,
	"y":      UnitYear,
	"years":  UnitYear,
}

// UnmarshalJSON rejects unknown units.
func (u *Unit) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, u, func(value string) (Unit, error) {
		parsed, ok := parseEnum(value, ValidUnits())
		if !ok {
			return "", invalid(ErrInvalidUnit, "%q", value)
		}
		return parsed, nil
	})
}

// Lifecycle controls whether completing a todo spawns a successor.
type Lifecycle string

const (
	// LifecycleOnce todos never recur.
	LifecycleOnce    Lifecycle = "Once"
	LifecycleDaily   Lifecycle = "Daily"
	LifecycleWeekly  Lifecycle = "Weekly"
	LifecycleMonthly Lifecycle = "Monthly"
	LifecycleYearly  Lifecycle = "Yearly"
)

// ValidLifecycles returns all valid lifecycle values.
func ValidLifecycles() []Lifecycle {
	return []Lifecycle{LifecycleOnce, LifecycleDaily, LifecycleWeekly, LifecycleMonthly, LifecycleYearly}
}

// IsValid returns true if the lifecycle is a known valid value.
func (l Lifecycle) IsValid() bool {
	for _, valid := range ValidLifecycles() {
		if l == valid {
			return true
		}
	}
	return false
}

// IsRecurring returns true when completion spawns a successor.
func (l Lifecycle) IsRecurring() bool {
	return l.IsValid() && l != LifecycleOnce
}

// ParseLifecycle parses a lifecycle name case-insensitively.
func ParseLifecycle(value string) (Lifecycle, error) {
	l, ok := parseEnum(value, ValidLifecycles())
	if !ok {
		return "", invalid(ErrInvalidLifecycle, "%q (want %s)", value, joinEnum(ValidLifecycles()))
	}
	return l, nil
}

// UnmarshalJSON rejects unknown lifecycles.
func (l *Lifecycle) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l, ParseLifecycle)
}

// MaxTitleLength is the maximum allowed length for a new todo's title.
// Titles already in the store file are not held to it.
const MaxTitleLength = 500

// MaxLifespanAmount bounds Lifespan.Amount so expiry arithmetic cannot
// overflow.
const MaxLifespanAmount = 10000

func parseEnum[T ~string](value string, valid []T) (T, bool) {
	normalized := strings.TrimSpace(value)
	for _, candidate := range valid {
		if strings.EqualFold(normalized, string(candidate)) {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}

// unmarshalEnum decodes a JSON string and requires an exact wire name.
func unmarshalEnum[T ~string](data []byte, dst *T, parse func(string) (T, error)) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := parse(raw)
	if err != nil {
		return err
	}
	if string(parsed) != raw {
		return fmt.Errorf("%q must be spelled %q", raw, parsed)
	}
	*dst = parsed
	return nil
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.ToLower(string(v))
	}
	return strings.Join(parts, ", ")
}
