package mylog

import (
	"fmt"
	"strings"

	"github.com/sporadisk/mylog/timevalue"
)

// Reasons carried by a ParseError.
const (
	ReasonTooFewFields  = "too few fields"
	ReasonMalformedTime = "malformed time"
)

// ParseError describes one unusable log line. It carries enough context
// for the user to fix the source file directly.
type ParseError struct {
	Line   int    // 1-based line number, 0 when unknown
	Field  string // offending field name, empty for structural problems
	Reason string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	if e.Field != "" {
		msg += " in field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// minFields is the work type, both boundary times, penalty, duration and
// label. Sublabel and description are optional.
const minFields = 6

// Parser turns log file text into records. The zero value is not usable;
// construct with NewParser so the format configuration is explicit.
type Parser struct {
	// ImplicitType is prepended to indented record lines, which by
	// convention log unaccounted time without naming it.
	ImplicitType string
}

func NewParser() *Parser {
	return &Parser{ImplicitType: TypeUnaccounted}
}

// ParseFile splits text into lines and parses each one. The first bad
// line aborts the whole parse: a partially accepted file would corrupt
// every downstream stage.
func (p *Parser) ParseFile(text string) ([]Record, error) {
	lines := strings.Split(text, "\n")
	records := []Record{}

	for i, line := range lines {
		record, ok, err := p.ParseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}

	return records, nil
}

// ParseLine parses one physical line. ok is false for blank lines and
// comments, which carry no record.
func (p *Parser) ParseLine(line string, lineNumber int) (record Record, ok bool, err error) {
	stripped, hadEscapes := stripComment(line)

	fields := strings.Fields(stripped)
	if len(fields) == 0 {
		return Record{}, false, nil
	}

	// An indented line is an unaccounted interval written out by hand;
	// it omits the work type field.
	if line[0] == ' ' || line[0] == '\t' {
		fields = append([]string{p.ImplicitType}, fields...)
	}

	if len(fields) < minFields {
		return Record{}, false, &ParseError{
			Line:   lineNumber,
			Reason: ReasonTooFewFields,
			Err:    fmt.Errorf("got %d fields, need at least %d", len(fields), minFields),
		}
	}

	record.WorkType = fields[0]
	record.Line = lineNumber

	timeFields := []struct {
		name  string
		token string
		dest  *timevalue.TimeValue
	}{
		{"start", fields[1], &record.Start},
		{"end", fields[2], &record.End},
		{"penalty", fields[3], &record.Penalty},
		{"duration", fields[4], &record.Duration},
	}

	for _, tf := range timeFields {
		value, perr := timevalue.Parse(tf.token)
		if perr != nil {
			return Record{}, false, &ParseError{
				Line:   lineNumber,
				Field:  tf.name,
				Reason: ReasonMalformedTime,
				Err:    perr,
			}
		}
		*tf.dest = value
	}

	// A 0:00 end time marks a still-running record.
	if record.End.IsZero() && !record.End.IsAbsent() {
		record.End = record.Start
	}

	record.Label = fields[5]
	record.Sublabel, record.Description = splitRemainder(fields[6:])
	if hadEscapes {
		record.Description = strings.ReplaceAll(record.Description, `\#`, "#")
	}

	return record, true, nil
}

// stripComment removes everything from the first unescaped '#' onward.
// hadEscapes tells the caller whether any escaped markers remain to be
// unescaped in the description.
func stripComment(line string) (stripped string, hadEscapes bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i > 0 && line[i-1] == '\\' {
			hadEscapes = true
			continue
		}
		return line[:i], hadEscapes
	}
	return line, hadEscapes
}

// splitRemainder assigns the tokens after the label. The seventh field is
// a sublabel unless it opens the quoted description; a lone dash is the
// "no sublabel" placeholder.
func splitRemainder(rest []string) (sublabel, description string) {
	if len(rest) == 0 {
		return "", ""
	}

	first := rest[0]
	if strings.HasPrefix(first, `"`) {
		return "", strings.Join(rest, " ")
	}

	if first != "-" {
		sublabel = first
	}
	return sublabel, strings.Join(rest[1:], " ")
}
