package timevalue

import (
	"errors"
	"fmt"
	"strings"
)

// Absence markers recognized by Parse. Both forms appear in hand-edited
// log files, so both are accepted.
const (
	AbsentShort = "-:--"
	AbsentLong  = "--:--"
)

// UncertainDigit marks a digit position whose true value is unknown.
const UncertainDigit = '?'

// AbsentMinutes is the Minutes result for an absent value. It keeps
// "no value" distinguishable from a genuine zero duration.
const AbsentMinutes = -1

var (
	ErrMalformed     = errors.New("malformed time value")
	ErrAbsentOperand = errors.New("comparison with an absent time value")
)

// TimeValue is a clock time or duration parsed from a single log token.
// The raw token is retained so uncertainty markers survive into rendered
// output, while arithmetic uses the zero-approximated minute count.
// Values are immutable after construction.
type TimeValue struct {
	raw     string
	absent  bool
	minutes int
}

// resolveUnknownDigit is the numeric policy for uncertain digits. Keeping
// it as its own function means a stricter uncertainty model only has to
// replace this one spot.
func resolveUnknownDigit() int {
	return 0
}

// Parse reads a token of the form H:MM or HH:MM, where any digit may be
// the uncertainty marker, or one of the absence markers.
func Parse(token string) (TimeValue, error) {
	if token == AbsentShort || token == AbsentLong {
		return TimeValue{raw: token, absent: true}, nil
	}

	hourStr, minStr, found := strings.Cut(token, ":")
	if !found {
		return TimeValue{}, fmt.Errorf("%w: %q has no colon", ErrMalformed, token)
	}

	if len(hourStr) < 1 || len(hourStr) > 2 {
		return TimeValue{}, fmt.Errorf("%w: %q needs a 1- or 2-digit hour part", ErrMalformed, token)
	}

	if len(minStr) != 2 {
		return TimeValue{}, fmt.Errorf("%w: %q needs a 2-digit minute part", ErrMalformed, token)
	}

	hour, ok := digitsValue(hourStr)
	if !ok {
		return TimeValue{}, fmt.Errorf("%w: bad hour part in %q", ErrMalformed, token)
	}

	minute, ok := digitsValue(minStr)
	if !ok {
		return TimeValue{}, fmt.Errorf("%w: bad minute part in %q", ErrMalformed, token)
	}

	// The minute range only applies when both digits are certain.
	// Hours are unbounded: durations may exceed a day.
	if !strings.ContainsRune(minStr, UncertainDigit) && minute > 59 {
		return TimeValue{}, fmt.Errorf("%w: minute part of %q is out of range", ErrMalformed, token)
	}

	return TimeValue{raw: token, minutes: hour*60 + minute}, nil
}

// digitsValue evaluates a run of digit-or-marker characters, applying
// the unknown-digit policy.
func digitsValue(s string) (value int, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			value = value*10 + int(c-'0')
		case c == UncertainDigit:
			value = value*10 + resolveUnknownDigit()
		default:
			return 0, false
		}
	}
	return value, true
}

// Absent returns the canonical not-applicable value.
func Absent() TimeValue {
	return TimeValue{raw: AbsentShort, absent: true}
}

// FromMinutes builds a fully-known value from a minute count. Negative
// inputs clamp to zero.
func FromMinutes(m int) TimeValue {
	if m < 0 {
		m = 0
	}
	return TimeValue{raw: fmt.Sprintf("%d:%02d", m/60, m%60), minutes: m}
}

func (t TimeValue) IsAbsent() bool {
	return t.absent
}

// IsZero reports a present value of exactly 0:00. The log format uses a
// 0:00 end time to mark a still-running record.
func (t TimeValue) IsZero() bool {
	return !t.absent && t.minutes == 0
}

// Uncertain reports whether any digit of the original token was unknown.
func (t TimeValue) Uncertain() bool {
	return strings.ContainsRune(t.raw, UncertainDigit)
}

// Minutes returns the zero-approximated minute count, or AbsentMinutes
// for an absent value.
func (t TimeValue) Minutes() int {
	if t.absent {
		return AbsentMinutes
	}
	return t.minutes
}

// approx is the arithmetic view: absent values count as zero. This is a
// deliberately lossy policy, documented in the format contract.
func (t TimeValue) approx() int {
	if t.absent {
		return 0
	}
	return t.minutes
}

func (t TimeValue) Add(o TimeValue) TimeValue {
	return FromMinutes(t.approx() + o.approx())
}

func (t TimeValue) Sub(o TimeValue) TimeValue {
	return FromMinutes(t.approx() - o.approx())
}

// Compare orders two present values. Absent operands have no defined
// order and yield ErrAbsentOperand rather than sorting as zero.
func (t TimeValue) Compare(o TimeValue) (int, error) {
	if t.absent || o.absent {
		return 0, ErrAbsentOperand
	}

	switch {
	case t.minutes < o.minutes:
		return -1, nil
	case t.minutes > o.minutes:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal compares the numeric interpretation of two values. Two absent
// values are equal regardless of which marker spelled them.
func (t TimeValue) Equal(o TimeValue) bool {
	if t.absent || o.absent {
		return t.absent == o.absent
	}
	return t.minutes == o.minutes
}

// String returns the original token, uncertainty markers intact. Values
// built by FromMinutes render as H:MM.
func (t TimeValue) String() string {
	if t.raw == "" {
		return AbsentShort
	}
	return t.raw
}
