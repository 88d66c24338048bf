package timevalue

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token   string
		absent  bool
		minutes int
		wantErr bool
	}{
		{token: "9:00", minutes: 540},
		{token: "10:45", minutes: 645},
		{token: "0:00", minutes: 0},
		{token: "26:10", minutes: 1570}, // durations may pass a day
		{token: "-:--", absent: true},
		{token: "--:--", absent: true},
		{token: "7:?5", minutes: 425},
		{token: "?:30", minutes: 30},
		{token: "??:??", minutes: 0},
		{token: "9:6?", minutes: 600}, // range check needs certain digits
		{token: "9", wantErr: true},
		{token: "", wantErr: true},
		{token: "100:00", wantErr: true},
		{token: "9:0", wantErr: true},
		{token: "9:000", wantErr: true},
		{token: "9:61", wantErr: true},
		{token: "a:00", wantErr: true},
		{token: "9:3a", wantErr: true},
		{token: "-:-?", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			value, err := Parse(tc.token)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %v", value)
					return
				}
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected ErrMalformed, got %s", err.Error())
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %s", err.Error())
				return
			}

			if value.IsAbsent() != tc.absent {
				t.Errorf("absence mismatch: expected %t, got %t", tc.absent, value.IsAbsent())
				return
			}

			if tc.absent {
				if value.Minutes() != AbsentMinutes {
					t.Errorf("expected the absent sentinel, got %d", value.Minutes())
				}
				return
			}

			if value.Minutes() != tc.minutes {
				t.Errorf("minutes mismatch: expected %d, got %d", tc.minutes, value.Minutes())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Fully-known values survive render-and-reparse unchanged.
	for _, token := range []string{"0:00", "9:05", "23:59", "26:10"} {
		value, err := Parse(token)
		if err != nil {
			t.Fatalf("Parse(%q): %s", token, err.Error())
		}

		again, err := Parse(value.String())
		if err != nil {
			t.Fatalf("reparse of %q: %s", value.String(), err.Error())
		}

		if !value.Equal(again) {
			t.Errorf("round trip changed %q into %q", token, again.String())
		}
	}
}

func TestUncertainRendering(t *testing.T) {
	value, err := Parse("7:?5")
	if err != nil {
		t.Fatalf("Parse: %s", err.Error())
	}

	if !value.Uncertain() {
		t.Errorf("expected the value to report uncertainty")
	}

	if value.String() != "7:?5" {
		t.Errorf("rendering lost the uncertainty marker: %q", value.String())
	}

	if value.Minutes() != 425 {
		t.Errorf("approximation mismatch: expected 425, got %d", value.Minutes())
	}
}

func TestArithmetic(t *testing.T) {
	nine := mustParse(t, "9:00")
	ten := mustParse(t, "10:15")

	diff := ten.Sub(nine)
	if diff.Minutes() != 75 {
		t.Errorf("Sub: expected 75 minutes, got %d", diff.Minutes())
	}
	if diff.String() != "1:15" {
		t.Errorf("Sub rendering: expected 1:15, got %s", diff.String())
	}

	sum := diff.Add(mustParse(t, "0:45"))
	if sum.Minutes() != 120 {
		t.Errorf("Add: expected 120 minutes, got %d", sum.Minutes())
	}

	// Subtraction never goes negative.
	if nine.Sub(ten).Minutes() != 0 {
		t.Errorf("expected a clamped zero, got %d", nine.Sub(ten).Minutes())
	}
}

func TestCompare(t *testing.T) {
	nine := mustParse(t, "9:00")
	ten := mustParse(t, "10:00")

	order, err := nine.Compare(ten)
	if err != nil {
		t.Fatalf("Compare: %s", err.Error())
	}
	if order != -1 {
		t.Errorf("expected -1, got %d", order)
	}

	_, err = nine.Compare(Absent())
	if !errors.Is(err, ErrAbsentOperand) {
		t.Errorf("expected ErrAbsentOperand, got %v", err)
	}
}

func mustParse(t *testing.T, token string) TimeValue {
	t.Helper()
	value, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse(%q): %s", token, err.Error())
	}
	return value
}
