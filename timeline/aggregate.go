package timeline

import (
	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/timevalue"
)

// Key identifies one aggregation bucket. Label is empty in the
// by-work-type aggregate.
type Key struct {
	WorkType string
	Label    string
}

// Bucket is one summed duration.
type Bucket struct {
	Key      Key
	Duration timevalue.TimeValue
}

// Aggregate sums durations into buckets that iterate in first-insertion
// order, so reports follow the file's own narrative order rather than a
// sorted one.
type Aggregate struct {
	buckets []Bucket
	index   map[Key]int
}

func NewAggregate() *Aggregate {
	return &Aggregate{index: map[Key]int{}}
}

func (a *Aggregate) Add(key Key, d timevalue.TimeValue) {
	i, ok := a.index[key]
	if !ok {
		a.index[key] = len(a.buckets)
		a.buckets = append(a.buckets, Bucket{Key: key, Duration: d})
		return
	}
	a.buckets[i].Duration = a.buckets[i].Duration.Add(d)
}

// Merge folds another aggregate into this one, preserving the receiver's
// insertion order for keys both have seen.
func (a *Aggregate) Merge(other *Aggregate) {
	for _, b := range other.buckets {
		a.Add(b.Key, b.Duration)
	}
}

func (a *Aggregate) Get(key Key) (timevalue.TimeValue, bool) {
	i, ok := a.index[key]
	if !ok {
		return timevalue.TimeValue{}, false
	}
	return a.buckets[i].Duration, true
}

func (a *Aggregate) Buckets() []Bucket {
	return a.buckets
}

func (a *Aggregate) Total() timevalue.TimeValue {
	total := timevalue.FromMinutes(0)
	for _, b := range a.buckets {
		total = total.Add(b.Duration)
	}
	return total
}

// Sum produces both aggregate views over a gap-filled sequence.
func Sum(records []mylog.Record) (byType, byLabel *Aggregate) {
	byType = NewAggregate()
	byLabel = NewAggregate()

	for _, record := range records {
		byType.Add(Key{WorkType: record.WorkType}, record.Duration)
		byLabel.Add(Key{WorkType: record.WorkType, Label: record.Label}, record.Duration)
	}

	return byType, byLabel
}
