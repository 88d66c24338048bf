package test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/timeline"
)

func analyze(t *testing.T, lines ...string) *timeline.Model {
	t.Helper()

	records, err := mylog.NewParser().ParseFile(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("ParseFile: %s", err.Error())
	}

	err = mylog.NewValidator().Validate(records)
	if err != nil {
		t.Fatalf("Validate: %s", err.Error())
	}

	extended := mylog.FillGaps(records)
	byType, byLabel := timeline.Sum(extended)

	model, err := timeline.Build("test.mylog", extended, byType, byLabel)
	if err != nil {
		t.Fatalf("timeline.Build: %s", err.Error())
	}
	return model
}

func TestGapFilledAggregation(t *testing.T) {
	model := analyze(t,
		`+ 9:00 10:00 0:00 1:00 study algebra "chapter 3"`,
		`- 10:15 10:45 0:00 0:30 internet - "browsing"`,
	)

	if len(model.Records) != 3 {
		t.Fatalf("expected 3 records including the gap, got %d", len(model.Records))
	}

	expected := []struct {
		workType string
		minutes  int
	}{
		{"+", 60},
		{"u", 15},
		{"-", 30},
	}

	for _, exp := range expected {
		got, ok := model.ByType.Get(timeline.Key{WorkType: exp.workType})
		if !ok {
			t.Errorf("missing %q bucket", exp.workType)
			continue
		}
		if got.Minutes() != exp.minutes {
			t.Errorf("%q bucket mismatch: expected %d, got %d", exp.workType, exp.minutes, got.Minutes())
		}
	}

	// Both aggregates and the day span account for the same total time.
	total := model.Span.Minutes()
	if model.ByType.Total().Minutes() != total {
		t.Errorf("by-type total mismatch: expected %d, got %d", total, model.ByType.Total().Minutes())
	}
	if model.ByLabel.Total().Minutes() != total {
		t.Errorf("by-label total mismatch: expected %d, got %d", total, model.ByLabel.Total().Minutes())
	}

	// The extended sequence is seamless: every boundary either touches
	// or was filled.
	for i := 1; i < len(model.Records); i++ {
		prev, cur := model.Records[i-1], model.Records[i]
		if !prev.End.Equal(cur.Start) {
			t.Errorf("hole left between records %d and %d: %s vs %s", i-1, i, prev.End, cur.Start)
		}
	}
}

func TestDurationMismatchSurfaces(t *testing.T) {
	records, err := mylog.NewParser().ParseFile(strings.Join([]string{
		"+ 8:00 9:00 0:00 1:00 study",
		"+ 9:00 10:00 0:00 1:05 reading",
	}, "\n"))
	if err != nil {
		t.Fatalf("ParseFile: %s", err.Error())
	}

	err = mylog.NewValidator().Validate(records)

	var verr *mylog.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}

	if verr.Reason != mylog.ReasonDurationMismatch {
		t.Errorf("reason mismatch: expected %q, got %q", mylog.ReasonDurationMismatch, verr.Reason)
	}

	if verr.Index != 1 || verr.Line != 2 {
		t.Errorf("position mismatch: got index %d, line %d", verr.Index, verr.Line)
	}
}

func TestUncertainDigitsFlowThrough(t *testing.T) {
	model := analyze(t, "+ 7:00 7:?5 -:-- 0:05 reading")

	record := model.Records[0]
	if record.End.String() != "7:?5" {
		t.Errorf("rendered end lost its marker: %q", record.End.String())
	}

	// 7:?5 approximates to 7:05 for arithmetic.
	if model.Span.Minutes() != 5 {
		t.Errorf("span mismatch: expected 5, got %d", model.Span.Minutes())
	}
}
