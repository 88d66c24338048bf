package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/sporadisk/mylog/config"
	"github.com/sporadisk/mylog/format"
	"github.com/sporadisk/mylog/timeline"
	"github.com/sporadisk/mylog/timevalue"
)

//go:embed assets/report.html.tmpl assets/style.css
var assets embed.FS

// Writer renders a run into a standalone HTML document with an inlined
// stylesheet, and writes it to disk.
type Writer struct {
	Conf *config.Config

	// RefreshTime is the page meta-refresh interval in seconds,
	// 0 disables it.
	RefreshTime int

	tmpl  *template.Template
	style template.CSS
}

func (w *Writer) Init() error {
	tmpl, err := template.ParseFS(assets, "assets/report.html.tmpl")
	if err != nil {
		return fmt.Errorf("template.ParseFS: %w", err)
	}
	w.tmpl = tmpl

	style, err := assets.ReadFile("assets/style.css")
	if err != nil {
		return fmt.Errorf("assets.ReadFile: %w", err)
	}
	w.style = template.CSS(style)

	return nil
}

// Render produces the report document for a whole run.
func (w *Writer) Render(run *timeline.Run) ([]byte, error) {
	page := pageContext{
		Style:       w.style,
		RefreshTime: w.RefreshTime,
	}
	for _, day := range run.Days {
		page.Days = append(page.Days, w.dayContext(day))
	}

	var buf bytes.Buffer
	err := w.tmpl.Execute(&buf, page)
	if err != nil {
		return nil, fmt.Errorf("tmpl.Execute: %w", err)
	}

	return buf.Bytes(), nil
}

// Write renders the run and writes it to path, creating the parent
// directory when needed.
func (w *Writer) Write(path string, run *timeline.Run) error {
	doc, err := w.Render(run)
	if err != nil {
		return fmt.Errorf("w.Render: %w", err)
	}

	return w.WriteDoc(path, doc)
}

// WriteDoc writes an already rendered document.
func (w *Writer) WriteDoc(path string, doc []byte) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	err = os.WriteFile(path, doc, 0644)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

type pageContext struct {
	Style       template.CSS
	RefreshTime int
	Days        []dayContext
}

type dayContext struct {
	Path      string
	StartTime string
	EndTime   string
	TotalTime string
	AggLines  []aggLine
	Lines     []recordLine
	Ticks     []tick
}

type aggLine struct {
	TypeName string
	Duration string
	Ratio    string
	Percent  string
}

type recordLine struct {
	TypeName    string
	Label       string
	Description string
	StartTime   string
	EndTime     string
	Duration    string
	Ratio       string
}

// tick is one hour mark along a day's timeline bar.
type tick struct {
	Hour   int
	Offset string // percent from the left edge
}

func (w *Writer) dayContext(day *timeline.Model) dayContext {
	d := dayContext{
		Path:      day.Path,
		StartTime: format.Clock(day.Start),
		EndTime:   format.Clock(day.End),
		TotalTime: day.Span.String(),
	}

	for _, b := range day.ByType.Buckets() {
		d.AggLines = append(d.AggLines, aggLine{
			TypeName: w.Conf.TypeName(b.Key.WorkType),
			Duration: b.Duration.String(),
			Ratio:    ratio(b.Duration, day.Span),
			Percent:  fmt.Sprintf("%.1f%%", format.Percent(b.Duration, day.Span)),
		})
	}

	for _, r := range day.Records {
		d.Lines = append(d.Lines, recordLine{
			TypeName:    w.Conf.TypeName(r.WorkType),
			Label:       r.DisplayLabel(),
			Description: r.Description,
			StartTime:   format.Clock(r.Start),
			EndTime:     format.Clock(r.End),
			Duration:    r.Duration.String(),
			Ratio:       ratio(r.Duration, day.Span),
		})
	}

	d.Ticks = hourTicks(day.Start, day.End)
	return d
}

func ratio(d, total timevalue.TimeValue) string {
	return fmt.Sprintf("%.4f", format.Ratio(d, total))
}

// hourTicks places a mark at every whole hour inside the day's span.
func hourTicks(start, end timevalue.TimeValue) []tick {
	startMin := start.Minutes()
	endMin := end.Minutes()
	span := endMin - startMin
	if startMin < 0 || span <= 0 {
		return nil
	}

	first := startMin / 60
	if startMin%60 != 0 {
		first++
	}

	var ticks []tick
	for h := first; h <= endMin/60; h++ {
		offset := float64(h*60-startMin) / float64(span)
		ticks = append(ticks, tick{
			Hour:   h % 24,
			Offset: fmt.Sprintf("%.2f", 100*offset),
		})
	}
	return ticks
}
