package vaod

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCheckDateFormat(t *testing.T) {
	tests := []struct {
		date string
		want Outcome
	}{
		{"20230401", OutcomeOK},
		{"20201231", OutcomeOK},
		{"20240229", OutcomeOK}, // leap day
		{"20230229", OutcomeBadFormat},
		{"20230431", OutcomeBadFormat},
		{"20231301", OutcomeBadFormat},
		{"00000101", OutcomeBadFormat}, // year 0
		{"2023040a", OutcomeBadFormat},
		{"abcdefgh", OutcomeBadFormat},
		{"2023041", OutcomeWrongLength},
		{"202304011", OutcomeWrongLength},
		{"", OutcomeWrongLength},
	}
	for _, tt := range tests {
		if got := CheckDateFormat(tt.date); got != tt.want {
			t.Errorf("CheckDateFormat(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestCheckDateRange(t *testing.T) {
	today := time.Date(2023, 8, 15, 13, 45, 0, 0, time.UTC)
	tests := []struct {
		start, end string
		want       Outcome
	}{
		{"20230401", "20230430", OutcomeOK},
		{"20230401", "20230401", OutcomeOK},
		{"20230815", "20230815", OutcomeOK}, // end == today
		{"20230430", "20230401", OutcomeEndBeforeStart},
		{"20230401", "20230816", OutcomeEndInFuture},
		{"20230401", "20240101", OutcomeEndInFuture},
	}
	for _, tt := range tests {
		if got := CheckDateRange(tt.start, tt.end, today); got != tt.want {
			t.Errorf("CheckDateRange(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestCheckChoice(t *testing.T) {
	allowed := []string{"SNPP", "NOAA-20", "both"}
	if got := CheckChoice("SNPP", allowed); got != OutcomeOK {
		t.Errorf("CheckChoice(SNPP) = %v, want ok", got)
	}
	// Matching is case-sensitive.
	if got := CheckChoice("snpp", allowed); got != OutcomeUnrecognized {
		t.Errorf("CheckChoice(snpp) = %v, want unrecognized", got)
	}
	if got := CheckChoice("GOES", allowed); got != OutcomeUnrecognized {
		t.Errorf("CheckChoice(GOES) = %v, want unrecognized", got)
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()

	if got := CheckDirectory(dir); got != OutcomeOK {
		t.Errorf("CheckDirectory(existing) = %v, want ok", got)
	}
	if got := CheckDirectory(""); got != OutcomeEmpty {
		t.Errorf("CheckDirectory(empty) = %v, want empty", got)
	}
	if got := CheckDirectory("bad\x00path"); got != OutcomeSyntaxError {
		t.Errorf("CheckDirectory(NUL) = %v, want syntax error", got)
	}
	if got := CheckDirectory(filepath.Join(dir, "absent")); got != OutcomeDoesNotExist {
		t.Errorf("CheckDirectory(absent) = %v, want does not exist", got)
	}

	// A plain file is not a usable target directory.
	file := filepath.Join(dir, "file.nc")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := CheckDirectory(file); got != OutcomeDoesNotExist {
		t.Errorf("CheckDirectory(file) = %v, want does not exist", got)
	}
}
