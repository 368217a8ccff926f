// Validation of raw console input.

package vaod

import (
	"os"
	"strings"
	"time"
)

// Outcome is the result of validating a single user-supplied value. Callers
// branch on it explicitly; validators never fail the process.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeWrongLength
	OutcomeBadFormat
	OutcomeEndBeforeStart
	OutcomeEndInFuture
	OutcomeUnrecognized
	OutcomeDoesNotExist
	OutcomeEmpty
	OutcomeSyntaxError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeWrongLength:
		return "wrong length"
	case OutcomeBadFormat:
		return "bad format"
	case OutcomeEndBeforeStart:
		return "end before start"
	case OutcomeEndInFuture:
		return "end in future"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeDoesNotExist:
		return "does not exist"
	case OutcomeEmpty:
		return "empty"
	case OutcomeSyntaxError:
		return "syntax error"
	}
	return "unknown"
}

// ParseDate parses an 8-digit YYYYMMDD string into a UTC calendar date. The
// input must already have passed CheckDateFormat.
func ParseDate(s string) time.Time {
	t, _ := time.Parse("20060102", s)
	return t
}

// CheckDateFormat validates an 8-digit YYYYMMDD date string. The string must
// be exactly eight digits and name a real calendar date.
func CheckDateFormat(date string) Outcome {
	if len(date) != 8 {
		return OutcomeWrongLength
	}
	for _, r := range date {
		if r < '0' || r > '9' {
			return OutcomeBadFormat
		}
	}
	// time.Parse with a numeric layout rejects impossible calendar dates
	// such as 20230230, but accepts year 0, which no archive serves.
	if strings.HasPrefix(date, "0000") {
		return OutcomeBadFormat
	}
	if _, err := time.Parse("20060102", date); err != nil {
		return OutcomeBadFormat
	}
	return OutcomeOK
}

// CheckDateRange validates the ordering of two already-syntax-valid dates
// against each other and against today. The current date is injected so the
// check is deterministic under test.
func CheckDateRange(startDate, endDate string, today time.Time) Outcome {
	start := ParseDate(startDate)
	end := ParseDate(endDate)
	if end.Before(start) {
		return OutcomeEndBeforeStart
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if end.After(day) {
		return OutcomeEndInFuture
	}
	return OutcomeOK
}

// CheckChoice validates membership of a fixed, case-sensitive allowed set.
func CheckChoice(value string, allowed []string) Outcome {
	for _, a := range allowed {
		if value == a {
			return OutcomeOK
		}
	}
	return OutcomeUnrecognized
}

// CheckDirectory validates a local directory path. An empty string is
// reported before any filesystem access.
func CheckDirectory(path string) Outcome {
	if len(path) == 0 {
		return OutcomeEmpty
	}
	if strings.ContainsRune(path, 0) {
		return OutcomeSyntaxError
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return OutcomeDoesNotExist
	}
	return OutcomeOK
}
