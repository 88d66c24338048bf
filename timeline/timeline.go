package timeline

import (
	"fmt"

	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/timevalue"
)

// Model is the renderable result for one analyzed log file: the
// gap-filled record sequence plus both aggregate views. It is handed to
// renderers by reference and must not be mutated by them.
type Model struct {
	Path    string
	Records []mylog.Record
	ByType  *Aggregate
	ByLabel *Aggregate
	Start   timevalue.TimeValue // start of the first record
	End     timevalue.TimeValue // end of the last record
	Span    timevalue.TimeValue // End - Start
}

// Build assembles a model from a gap-filled sequence and its aggregates.
// It performs no new computation beyond checking that every record's
// grouping keys landed in both aggregates.
func Build(path string, records []mylog.Record, byType, byLabel *Aggregate) (*Model, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to build a timeline from")
	}

	for i, record := range records {
		if _, ok := byType.Get(Key{WorkType: record.WorkType}); !ok {
			return nil, fmt.Errorf("record %d: work type %q missing from the by-type aggregate", i, record.WorkType)
		}
		if _, ok := byLabel.Get(Key{WorkType: record.WorkType, Label: record.Label}); !ok {
			return nil, fmt.Errorf("record %d: key (%q, %q) missing from the by-label aggregate", i, record.WorkType, record.Label)
		}
	}

	start := records[0].Start
	end := records[len(records)-1].End

	return &Model{
		Path:    path,
		Records: records,
		ByType:  byType,
		ByLabel: byLabel,
		Start:   start,
		End:     end,
		Span:    end.Sub(start),
	}, nil
}

// Run collects the analyzed days of one invocation, for cross-day
// summaries.
type Run struct {
	Days    []*Model
	ByType  *Aggregate
	ByLabel *Aggregate
	Span    timevalue.TimeValue // summed day spans
}

func NewRun() *Run {
	return &Run{
		ByType:  NewAggregate(),
		ByLabel: NewAggregate(),
		Span:    timevalue.FromMinutes(0),
	}
}

func (r *Run) Add(day *Model) {
	r.Days = append(r.Days, day)
	r.ByType.Merge(day.ByType)
	r.ByLabel.Merge(day.ByLabel)
	r.Span = r.Span.Add(day.Span)
}

// Output renders analyzed timelines for the user.
type Output interface {
	// OutputDay renders the full per-day breakdown.
	OutputDay(day *Model) error

	// OutputRun renders the cross-day summary of a multi-file run.
	OutputRun(run *Run) error
}
