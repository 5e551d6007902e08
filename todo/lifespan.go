package todo

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Lifespan is how long after creation a todo stays open.
type Lifespan struct {
	Amount int  `json:"amount" yaml:"amount"`
	Unit   Unit `json:"unit" yaml:"unit"`
}

// DefaultLifespan is used when a todo is created without a lifespan.
var DefaultLifespan = Lifespan{Amount: 1, Unit: UnitDay}

// String renders the lifespan as "1 day" or "3 weeks".
func (l Lifespan) String() string {
	unit := strings.ToLower(string(l.Unit))
	if l.Amount != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", l.Amount, unit)
}

// ParseLifespan parses values like "3d", "2w", "1 month" or "year".
// A missing amount means one.
func ParseLifespan(value string) (Lifespan, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Lifespan{}, invalid(ErrInvalidLifespan, "empty value")
	}

	end := 0
	for end < len(value) {
		c := value[end]
		if (c >= '0' && c <= '9') || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}

	amount := 1
	if end > 0 {
		parsed, err := strconv.Atoi(value[:end])
		if err != nil {
			return Lifespan{}, invalid(ErrInvalidLifespan, "%q", value)
		}
		amount = parsed
	}

	unitText := strings.TrimSpace(value[end:])
	if unitText == "" {
		return Lifespan{}, invalid(ErrInvalidLifespan, "%q has no unit", value)
	}
	unit, err := ParseUnit(unitText)
	if err != nil {
		return Lifespan{}, err
	}

	l := Lifespan{Amount: amount, Unit: unit}
	if err := ValidateLifespan(l); err != nil {
		return Lifespan{}, err
	}
	return l, nil
}

// Expiry returns the moment the todo stops being open.
func Expiry(item Todo) time.Time {
	return AddUnits(item.CreatedAt, item.Lifespan.Amount, item.Lifespan.Unit)
}

// NextOccurrence returns the creation time of the todo's successor.
// It returns false for todos that do not recur.
func NextOccurrence(item Todo) (time.Time, bool) {
	if !item.Lifecycle.IsRecurring() {
		return time.Time{}, false
	}
	interval, _ := cycleInterval(item.Lifecycle)
	return AddUnits(item.CreatedAt, interval.Amount, interval.Unit), true
}

func cycleInterval(l Lifecycle) (Lifespan, bool) {
	switch l {
	case LifecycleDaily:
		return Lifespan{Amount: 1, Unit: UnitDay}, true
	case LifecycleWeekly:
		return Lifespan{Amount: 1, Unit: UnitWeek}, true
	case LifecycleMonthly:
		return Lifespan{Amount: 1, Unit: UnitMonth}, true
	case LifecycleYearly:
		return Lifespan{Amount: 1, Unit: UnitYear}, true
	default:
		return Lifespan{}, false
	}
}

// AddUnits adds amount calendar units to t in t's location.
// Months and years keep the day of month, clamped to the target month's
// last day, so Jan 31 plus one month is the last day of February.
func AddUnits(t time.Time, amount int, unit Unit) time.Time {
	switch unit {
	case UnitDay:
		return t.AddDate(0, 0, amount)
	case UnitWeek:
		return t.AddDate(0, 0, 7*amount)
	case UnitMonth:
		return addMonths(t, amount)
	case UnitYear:
		return addMonths(t, 12*amount)
	default:
		return t
	}
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
