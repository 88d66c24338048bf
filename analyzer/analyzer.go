package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/config"
	"github.com/sporadisk/mylog/console"
	"github.com/sporadisk/mylog/parameter"
	"github.com/sporadisk/mylog/report"
	"github.com/sporadisk/mylog/timeline"
)

var ErrEmptyLog = errors.New("log contains no usable records")

// Publisher uploads a rendered report somewhere else.
type Publisher interface {
	Publish(ctx context.Context, name string, html []byte) error
}

// Analyzer drives the whole pipeline: read, parse, optionally extend to
// the current time, validate, fill gaps, aggregate, and hand the models
// to the configured outputs.
type Analyzer struct {
	Conf      *config.Config
	Parser    *mylog.Parser
	Validator *mylog.Validator
	Output    timeline.Output
	Report    *report.Writer
	Publisher Publisher

	ReportPath    string
	UseNow        bool
	StaleLimit    time.Duration // 0 disables the stale check
	Long          bool
	IgnoreMissing bool

	// Now is the clock used by the use-now augmentation.
	Now func() time.Time
}

func (a *Analyzer) Init() error {
	if a.Parser == nil {
		a.Parser = mylog.NewParser()
	}

	if a.Validator == nil {
		check, err := parameter.Validate(a.Conf.DurationCheck, []string{mylog.CheckExact, mylog.CheckAtMost})
		if err != nil {
			return fmt.Errorf("validation failure for duration check mode: %w", err)
		}
		a.Validator = &mylog.Validator{DurationCheck: check}
	}

	if a.ReportPath == "" {
		a.ReportPath = a.Conf.ReportPath
	}

	if a.Now == nil {
		a.Now = time.Now
	}

	return nil
}

// Run analyzes every path of one invocation, prints the summaries and
// writes the report.
func (a *Analyzer) Run(paths []string) error {
	run := timeline.NewRun()

	for _, path := range paths {
		day, err := a.AnalyzeFile(path)
		if err != nil {
			if a.IgnoreMissing && (errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrEmptyLog)) {
				continue
			}
			return fmt.Errorf("%s: %w", path, err)
		}

		run.Add(day)

		if a.Long || len(paths) == 1 {
			err = a.Output.OutputDay(day)
			if err != nil {
				return fmt.Errorf("Output.OutputDay: %w", err)
			}
		}
	}

	if len(run.Days) == 0 {
		return ErrEmptyLog
	}

	if len(run.Days) > 1 {
		err := a.Output.OutputRun(run)
		if err != nil {
			return fmt.Errorf("Output.OutputRun: %w", err)
		}
	}

	return a.writeAndPublish(run)
}

// AnalyzeFile runs the core pipeline for one log file.
func (a *Analyzer) AnalyzeFile(path string) (*timeline.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	records, err := a.Parser.ParseFile(string(data))
	if err != nil {
		return nil, err
	}

	return a.analyzeRecords(path, records)
}

func (a *Analyzer) analyzeRecords(path string, records []mylog.Record) (*timeline.Model, error) {
	var err error
	if a.UseNow && len(records) > 0 {
		records, err = a.augmentNow(records)
		if err != nil {
			return nil, err
		}
	}

	records = dropEmpty(records)
	if len(records) == 0 {
		return nil, ErrEmptyLog
	}

	err = a.Validator.Validate(records)
	if err != nil {
		return nil, err
	}

	extended := mylog.FillGaps(records)
	byType, byLabel := timeline.Sum(extended)

	model, err := timeline.Build(path, extended, byType, byLabel)
	if err != nil {
		return nil, fmt.Errorf("timeline.Build: %w", err)
	}

	return model, nil
}

// Receive makes the analyzer a watch-mode record receiver: each write to
// the watched file re-analyzes and re-renders that day. Analysis errors
// are reported and swallowed so the watch survives bad edits.
func (a *Analyzer) Receive(path string, records []mylog.Record) error {
	day, err := a.analyzeRecords(path, records)
	if err != nil {
		fmt.Printf("%s: %s\n", path, err.Error())
		return nil
	}

	err = a.Output.OutputDay(day)
	if err != nil {
		return fmt.Errorf("Output.OutputDay: %w", err)
	}

	run := timeline.NewRun()
	run.Add(day)

	if a.Report != nil {
		err = a.Report.Write(a.ReportPath, run)
		if err != nil {
			return fmt.Errorf("Report.Write: %w", err)
		}
	}

	return nil
}

func (a *Analyzer) writeAndPublish(run *timeline.Run) error {
	if a.Report == nil {
		return nil
	}

	doc, err := a.Report.Render(run)
	if err != nil {
		return fmt.Errorf("Report.Render: %w", err)
	}

	err = a.Report.WriteDoc(a.ReportPath, doc)
	if err != nil {
		return fmt.Errorf("Report.WriteDoc: %w", err)
	}

	if a.Publisher == nil {
		return nil
	}

	if !console.Confirm("Publish the rendered report?") {
		return nil
	}

	name := a.Now().Format("2006-01-02") + "-report.html"
	err = a.Publisher.Publish(context.Background(), name, doc)
	if err != nil {
		return fmt.Errorf("Publisher.Publish: %w", err)
	}

	return nil
}

// dropEmpty removes zero-length records; an open record the use-now
// augmentation did not extend carries no time.
func dropEmpty(records []mylog.Record) []mylog.Record {
	kept := records[:0:0]
	for _, r := range records {
		if !r.Start.Equal(r.End) {
			kept = append(kept, r)
		}
	}
	return kept
}
