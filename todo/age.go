package todo

import (
	"time"

	internalage "github.com/amonks/rtodo/internal/age"
)

// DueData computes the time left before the todo expires. Done todos have no
// due time.
func DueData(item Todo, now time.Time) (time.Duration, bool) {
	if item.Status == StatusDone {
		return 0, false
	}
	return internalage.UntilData(Expiry(item), now)
}
