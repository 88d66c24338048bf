package report

import (
	"strings"
	"testing"

	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/config"
	"github.com/sporadisk/mylog/timeline"
)

func testRun(t *testing.T) *timeline.Run {
	t.Helper()

	text := strings.Join([]string{
		`+ 9:00 10:00 0:00 1:00 study algebra "chapter 3"`,
		`- 10:15 10:45 0:00 0:30 internet`,
	}, "\n")

	records, err := mylog.NewParser().ParseFile(text)
	if err != nil {
		t.Fatalf("ParseFile: %s", err.Error())
	}

	extended := mylog.FillGaps(records)
	byType, byLabel := timeline.Sum(extended)

	day, err := timeline.Build("2026-08-29.mylog", extended, byType, byLabel)
	if err != nil {
		t.Fatalf("timeline.Build: %s", err.Error())
	}

	run := timeline.NewRun()
	run.Add(day)
	return run
}

func TestRender(t *testing.T) {
	writer := &Writer{Conf: config.Default()}
	err := writer.Init()
	if err != nil {
		t.Fatalf("writer.Init: %s", err.Error())
	}

	doc, err := writer.Render(testRun(t))
	if err != nil {
		t.Fatalf("writer.Render: %s", err.Error())
	}

	html := string(doc)

	for _, want := range []string{
		"2026-08-29.mylog",
		"9:00",               // day start
		"10:45",              // day end
		"study: algebra",     // joined display label
		`class="cell good"`,  // work-type name used as css class
		`class="cell bad"`,   // second record's type
		`class="cell uncounted"`, // the filled gap
		"<style>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report is missing %q", want)
		}
	}

	if strings.Contains(html, "http-equiv") {
		t.Errorf("refresh meta tag should be absent when RefreshTime is 0")
	}
}

func TestRenderRefresh(t *testing.T) {
	writer := &Writer{Conf: config.Default(), RefreshTime: 30}
	err := writer.Init()
	if err != nil {
		t.Fatalf("writer.Init: %s", err.Error())
	}

	doc, err := writer.Render(testRun(t))
	if err != nil {
		t.Fatalf("writer.Render: %s", err.Error())
	}

	if !strings.Contains(string(doc), `content="30"`) {
		t.Errorf("expected a meta refresh of 30 seconds")
	}
}

func TestHourTicks(t *testing.T) {
	run := testRun(t)
	day := run.Days[0]

	ticks := hourTicks(day.Start, day.End)

	// 9:00-10:45 contains the whole hours 9 and 10.
	if len(ticks) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(ticks))
	}

	if ticks[0].Hour != 9 || ticks[0].Offset != "0.00" {
		t.Errorf("first tick mismatch: got hour %d at %s%%", ticks[0].Hour, ticks[0].Offset)
	}

	if ticks[1].Hour != 10 {
		t.Errorf("second tick mismatch: got hour %d", ticks[1].Hour)
	}
}
