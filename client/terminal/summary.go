package terminal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sporadisk/mylog/format"
	"github.com/sporadisk/mylog/timeline"
	"github.com/sporadisk/mylog/timevalue"
)

// OutputDay prints the full breakdown for one analyzed log file.
func (c *Client) OutputDay(day *timeline.Model) error {
	var sb strings.Builder

	sb.WriteString(day.Path + "\n\n")
	c.writeAggregates(&sb, day.ByType, day.ByLabel, day.Span, 1, 0)

	fmt.Print(sb.String())
	return nil
}

// OutputRun prints the cross-day summary of a multi-file run.
func (c *Client) OutputRun(run *timeline.Run) error {
	var sb strings.Builder

	sb.WriteString("Summary:\n\n")
	days := len(run.Days)
	c.writeAggregates(&sb, run.ByType, run.ByLabel, run.Span, days, c.MinLabelMinutes*days)

	fmt.Print(sb.String())
	return nil
}

func (c *Client) writeAggregates(sb *strings.Builder, byType, byLabel *timeline.Aggregate,
	total timevalue.TimeValue, days, minLabelMinutes int) {

	sb.WriteString("total: " + format.Duration(byType.Total(), total, days) + "\n\n")

	sb.WriteString("By type:\n\n")
	for _, b := range c.order(byType.Buckets()) {
		line := b.Key.WorkType + " " + format.Duration(b.Duration, total, days)
		sb.WriteString(c.paint(c.Conf.TypeColor(b.Key.WorkType), line) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("By label:\n\n")
	rows := []Row{}
	for _, b := range c.order(byLabel.Buckets()) {
		if b.Duration.Minutes() < minLabelMinutes {
			continue
		}
		rows = append(rows, Row{
			Color: c.Conf.TypeColor(b.Key.WorkType),
			Cells: []string{b.Key.WorkType, b.Key.Label, format.Duration(b.Duration, total, days)},
		})
	}
	for _, r := range alignRows(rows, ".", " ") {
		sb.WriteString(c.paint(r.Color, r.Cells[0]) + "\n")
	}
	sb.WriteString("\n")
}

// order applies the sort flag without disturbing the aggregate's own
// insertion-ordered slice.
func (c *Client) order(buckets []timeline.Bucket) []timeline.Bucket {
	if !c.Sort {
		return buckets
	}

	sorted := make([]timeline.Bucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration.Minutes() > sorted[j].Duration.Minutes()
	})
	return sorted
}
