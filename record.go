package mylog

import "github.com/sporadisk/mylog/timevalue"

// TypeUnaccounted is the work type assigned to synthetic gap records and
// to indented record lines that omit their own work type.
const TypeUnaccounted = "u"

// Record is one validated activity entry from a log file.
// Records are never mutated after parsing; downstream stages either pass
// them through or build adjusted copies.
type Record struct {
	WorkType    string
	Start       timevalue.TimeValue
	End         timevalue.TimeValue
	Penalty     timevalue.TimeValue
	Duration    timevalue.TimeValue
	Label       string
	Sublabel    string
	Description string

	// Line is the 1-based source line number, 0 for synthetic records.
	Line int

	// Synthetic marks gap records that never appeared in the file.
	Synthetic bool
}

// DisplayLabel joins label and sublabel into the form used by renderers.
func (r Record) DisplayLabel() string {
	if r.Sublabel != "" {
		return r.Label + ": " + r.Sublabel
	}
	return r.Label
}

// Open reports a record whose end time has not been written yet.
// The parser normalizes a 0:00 end time to end == start.
func (r Record) Open() bool {
	return r.Start.Equal(r.End)
}

// Receiver consumes the records parsed from a changed log file.
type Receiver interface {
	Receive(path string, records []Record) error
}

// Subscriber delivers freshly parsed records to a receiver whenever the
// underlying source changes.
type Subscriber interface {
	Subscribe(receiver Receiver) error
}
