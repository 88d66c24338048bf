package analyzer

import (
	"errors"
	"fmt"
	"time"

	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/timevalue"
)

var ErrStale = errors.New("stale-limit reached")

// augmentNow extends the log to the current wall-clock time. An open or
// unaccounted final record grows to end now; anything else gets a fresh
// unaccounted record appended behind it. Records are copied, never
// mutated in place.
func (a *Analyzer) augmentNow(records []mylog.Record) ([]mylog.Record, error) {
	last := records[len(records)-1]
	if last.Start.IsAbsent() || last.End.IsAbsent() {
		return records, nil
	}

	now := a.Now()
	nowValue := timevalue.FromMinutes(now.Hour()*60 + now.Minute())

	order, err := nowValue.Compare(last.End)
	if err != nil || order < 0 {
		// The log already runs past the clock, likely being edited for
		// a future interval. Leave it alone.
		return records, nil
	}

	extended := make([]mylog.Record, len(records))
	copy(extended, records)

	// sinceLast is how long the user has gone without logging.
	var sinceLast timevalue.TimeValue

	if last.WorkType == mylog.TypeUnaccounted || last.Open() {
		updated := last
		updated.End = nowValue
		updated.Duration = nowValue.Sub(last.Start)
		extended[len(extended)-1] = updated
		sinceLast = nowValue.Sub(last.Start)
	} else {
		extended = append(extended, mylog.Record{
			WorkType:  mylog.TypeUnaccounted,
			Start:     last.End,
			End:       nowValue,
			Penalty:   timevalue.Absent(),
			Duration:  nowValue.Sub(last.End),
			Synthetic: true,
		})
		sinceLast = nowValue.Sub(last.End)
	}

	if a.StaleLimit > 0 && !a.Conf.StaleExempt(last.WorkType) {
		stale := time.Duration(sinceLast.Minutes()) * time.Minute
		if stale > a.StaleLimit {
			return nil, fmt.Errorf("%w: %s since %q on line %d", ErrStale, sinceLast, last.DisplayLabel(), last.Line)
		}
	}

	return extended, nil
}
