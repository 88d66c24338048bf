package mylog

import (
	"errors"
	"strings"
	"testing"
)

func parseLines(t *testing.T, lines ...string) []Record {
	t.Helper()
	parser := NewParser()
	records, err := parser.ParseFile(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("ParseFile: %s", err.Error())
	}
	return records
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		check      string
		lines      []string
		wantReason string
		wantIndex  int
	}{
		{
			name: "consistent file",
			lines: []string{
				"+ 9:00 10:00 0:00 1:00 study",
				"- 10:15 10:45 0:00 0:30 internet",
			},
		},
		{
			name: "gap needs no back-to-back ends",
			lines: []string{
				"+ 9:00 10:00 0:00 1:00 study",
				"+ 13:00 14:00 0:00 1:00 study",
			},
		},
		{
			name: "out of order",
			lines: []string{
				"+ 9:00 10:00 0:00 1:00 study",
				"- 8:00 8:30 0:00 0:30 internet",
			},
			wantReason: ReasonOutOfOrder,
			wantIndex:  1,
		},
		{
			name: "overlap",
			lines: []string{
				"+ 9:00 10:00 0:00 1:00 study",
				"- 9:30 10:30 0:00 1:00 internet",
			},
			wantReason: ReasonOverlap,
			wantIndex:  1,
		},
		{
			name: "duration mismatch",
			lines: []string{
				"+ 9:00 10:00 0:00 1:05 study",
			},
			wantReason: ReasonDurationMismatch,
			wantIndex:  0,
		},
		{
			name: "short duration fails the exact check",
			lines: []string{
				"+ 9:00 10:00 0:00 0:45 study",
			},
			wantReason: ReasonDurationMismatch,
			wantIndex:  0,
		},
		{
			name:  "short duration passes the atmost check",
			check: CheckAtMost,
			lines: []string{
				"+ 9:00 10:00 0:00 0:45 study",
			},
		},
		{
			name:  "long duration still fails the atmost check",
			check: CheckAtMost,
			lines: []string{
				"+ 9:00 10:00 0:00 1:05 study",
			},
			wantReason: ReasonDurationMismatch,
			wantIndex:  0,
		},
		{
			name: "absent boundary cannot be ordered",
			lines: []string{
				"+ 9:00 10:00 0:00 1:00 study",
				"- -:-- 10:45 0:00 1:00 internet",
			},
			wantReason: ReasonAbsentTime,
			wantIndex:  1,
		},
		{
			name: "absent duration is not checked",
			lines: []string{
				"+ 9:00 10:00 0:00 --:-- study",
			},
		},
		{
			name: "uncertain digits approximate to zero",
			lines: []string{
				"+ 9:00 9:3? 0:00 0:3? study",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			validator := NewValidator()
			if tc.check != "" {
				validator.DurationCheck = tc.check
			}

			err := validator.Validate(parseLines(t, tc.lines...))

			if tc.wantReason == "" {
				if err != nil {
					t.Errorf("unexpected validation error: %s", err.Error())
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a ValidationError, got %v", err)
			}

			if verr.Reason != tc.wantReason {
				t.Errorf("reason mismatch: expected %q, got %q", tc.wantReason, verr.Reason)
			}

			if verr.Index != tc.wantIndex {
				t.Errorf("index mismatch: expected %d, got %d", tc.wantIndex, verr.Index)
			}
		})
	}
}
