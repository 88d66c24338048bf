package mylog

import "fmt"

// Reasons carried by a ValidationError.
const (
	ReasonOutOfOrder       = "out of order"
	ReasonOverlap          = "overlap"
	ReasonDurationMismatch = "duration mismatch"
	ReasonAbsentTime       = "absent boundary time"
)

// Duration strictness modes. The format description only demands
// duration <= end-start, while the file-level rule wants exact equality;
// the checker supports both rather than silently picking one.
const (
	CheckExact  = "exact"
	CheckAtMost = "atmost"
)

// ValidationError is a cross-record consistency violation. Validation
// stops at the first one: aggregation and gap filling both assume a
// fully consistent timeline.
type ValidationError struct {
	Index  int // offending record index within the file order
	Line   int // source line of the offending record
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d (record %d): %s: %s", e.Line, e.Index, e.Reason, e.Detail)
}

// Validator checks chronological ordering, non-overlap and duration
// consistency across a whole parsed sequence.
type Validator struct {
	// DurationCheck is CheckExact or CheckAtMost.
	DurationCheck string
}

func NewValidator() *Validator {
	return &Validator{DurationCheck: CheckExact}
}

// Validate walks the records in file order and returns the first
// violation found, or nil for a consistent sequence.
func (v *Validator) Validate(records []Record) error {
	for i, record := range records {
		if i > 0 {
			if err := v.checkOrdering(i, records[i-1], record); err != nil {
				return err
			}
		}

		if err := v.checkDuration(i, record); err != nil {
			return err
		}
	}
	return nil
}

// checkOrdering distinguishes a record that moves backwards in time from
// one that merely starts inside its predecessor.
func (v *Validator) checkOrdering(index int, prev, cur Record) error {
	startOrder, err := cur.Start.Compare(prev.Start)
	if err != nil {
		return &ValidationError{
			Index:  index,
			Line:   cur.Line,
			Reason: ReasonAbsentTime,
			Detail: "an absent start time cannot be ordered against the previous record",
		}
	}

	if startOrder < 0 {
		return &ValidationError{
			Index:  index,
			Line:   cur.Line,
			Reason: ReasonOutOfOrder,
			Detail: fmt.Sprintf("start %s is earlier than the previous start %s", cur.Start, prev.Start),
		}
	}

	endOrder, err := cur.Start.Compare(prev.End)
	if err != nil {
		return &ValidationError{
			Index:  index,
			Line:   cur.Line,
			Reason: ReasonAbsentTime,
			Detail: "an absent end time cannot be ordered against the next record",
		}
	}

	if endOrder < 0 {
		return &ValidationError{
			Index:  index,
			Line:   cur.Line,
			Reason: ReasonOverlap,
			Detail: fmt.Sprintf("start %s is earlier than the previous end %s", cur.Start, prev.End),
		}
	}

	return nil
}

func (v *Validator) checkDuration(index int, record Record) error {
	if record.Start.IsAbsent() || record.End.IsAbsent() || record.Duration.IsAbsent() {
		return nil
	}

	span := record.End.Sub(record.Start)
	mismatch := record.Duration.Minutes() != span.Minutes()
	if v.DurationCheck == CheckAtMost {
		mismatch = record.Duration.Minutes() > span.Minutes()
	}

	if mismatch {
		return &ValidationError{
			Index:  index,
			Line:   record.Line,
			Reason: ReasonDurationMismatch,
			Detail: fmt.Sprintf("duration %s does not match end %s - start %s", record.Duration, record.End, record.Start),
		}
	}

	return nil
}
