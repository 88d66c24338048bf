package mylog

import "github.com/sporadisk/mylog/timevalue"

// FillGaps inserts a synthetic unaccounted record into every interior
// gap between consecutive records. Time before the first record and
// after the last is left alone: the log makes no claim about day
// boundaries. The input is assumed validated, so boundary times order
// cleanly; a pair that cannot be compared is skipped rather than
// guessed at.
func FillGaps(records []Record) []Record {
	if len(records) == 0 {
		return records
	}

	filled := make([]Record, 0, len(records))
	for i, record := range records {
		if i > 0 {
			if gap, ok := gapBetween(records[i-1], record); ok {
				filled = append(filled, gap)
			}
		}
		filled = append(filled, record)
	}

	return filled
}

func gapBetween(prev, cur Record) (Record, bool) {
	order, err := prev.End.Compare(cur.Start)
	if err != nil || order >= 0 {
		return Record{}, false
	}

	return Record{
		WorkType:  TypeUnaccounted,
		Start:     prev.End,
		End:       cur.Start,
		Penalty:   timevalue.Absent(),
		Duration:  cur.Start.Sub(prev.End),
		Synthetic: true,
	}, true
}
