package todo

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusOpen, true},
		{StatusDone, true},
		{StatusOverdue, true},
		{Status("open"), false},
		{Status("invalid"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestStatus_IsCompletable(t *testing.T) {
	tests := []struct {
		status      Status
		completable bool
	}{
		{StatusOpen, true},
		{StatusOverdue, true},
		{StatusDone, false},
		{Status("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsCompletable(); got != tt.completable {
				t.Errorf("Status(%q).IsCompletable() = %v, want %v", tt.status, got, tt.completable)
			}
		})
	}
}

func TestLifecycle_IsRecurring(t *testing.T) {
	tests := []struct {
		lifecycle Lifecycle
		recurring bool
	}{
		{LifecycleOnce, false},
		{LifecycleDaily, true},
		{LifecycleWeekly, true},
		{LifecycleMonthly, true},
		{LifecycleYearly, true},
		{Lifecycle("Hourly"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.lifecycle), func(t *testing.T) {
			if got := tt.lifecycle.IsRecurring(); got != tt.recurring {
				t.Errorf("Lifecycle(%q).IsRecurring() = %v, want %v", tt.lifecycle, got, tt.recurring)
			}
		})
	}
}

func TestEveryRecurringLifecycleHasInterval(t *testing.T) {
	for _, l := range ValidLifecycles() {
		_, ok := cycleInterval(l)
		if ok != l.IsRecurring() {
			t.Errorf("cycleInterval(%q) ok=%v, want %v", l, ok, l.IsRecurring())
		}
	}
}

func TestEveryUnitAdvancesTime(t *testing.T) {
	start := mustTime(t, "2025-03-10T08:00:00Z")
	for _, u := range ValidUnits() {
		if got := AddUnits(start, 1, u); !got.After(start) {
			t.Errorf("AddUnits(%s, 1, %s) = %s, want later time", start, u, got)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"Open", StatusOpen, false},
		{"open", StatusOpen, false},
		{" OVERDUE ", StatusOverdue, false},
		{"done", StatusDone, false},
		{"closed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"Day", UnitDay, false},
		{"d", UnitDay, false},
		{"days", UnitDay, false},
		{"W", UnitWeek, false},
		{"month", UnitMonth, false},
		{"Months", UnitMonth, false},
		{"y", UnitYear, false},
		{"year", UnitYear, false},
		{"life", "", true},
		{"fortnight", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidUnit) {
					t.Fatalf("expected ErrInvalidUnit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseLifecycle(t *testing.T) {
	for _, l := range ValidLifecycles() {
		got, err := ParseLifecycle(string(l))
		if err != nil {
			t.Fatalf("ParseLifecycle(%q) failed: %v", l, err)
		}
		if got != l {
			t.Fatalf("expected %q, got %q", l, got)
		}
	}

	if got, err := ParseLifecycle("weekly"); err != nil || got != LifecycleWeekly {
		t.Fatalf("expected weekly to parse, got %q, %v", got, err)
	}

	_, err := ParseLifecycle("sometimes")
	if !errors.Is(err, ErrInvalidLifecycle) {
		t.Fatalf("expected ErrInvalidLifecycle, got %v", err)
	}
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %T", err)
	}
}

func TestEnumUnmarshalRequiresWireName(t *testing.T) {
	var status Status
	if err := json.Unmarshal([]byte(`"Overdue"`), &status); err != nil {
		t.Fatalf("unmarshal Overdue: %v", err)
	}
	if status != StatusOverdue {
		t.Fatalf("expected Overdue, got %q", status)
	}

	if err := json.Unmarshal([]byte(`"overdue"`), &status); err == nil {
		t.Fatal("expected lowercase status to be rejected")
	}

	var unit Unit
	if err := json.Unmarshal([]byte(`"d"`), &unit); err == nil {
		t.Fatal("expected unit alias to be rejected in JSON")
	}

	var lifecycle Lifecycle
	if err := json.Unmarshal([]byte(`"Fortnightly"`), &lifecycle); err == nil {
		t.Fatal("expected unknown lifecycle to be rejected")
	}
}
