// Interactive console prompts.
//
// Every parameter is collected by an unbounded retry loop: read a line,
// validate it, print the message for the outcome and ask again until the
// value is valid. The loops only end on valid input or when the input
// stream itself ends.

package vaod

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"
)

// A Prompter collects validated parameters from a console. Now is consulted
// for the date-range future check and defaults to time.Now.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	Now func() time.Time
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, Now: time.Now}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *Prompter) say(line string) {
	fmt.Fprintln(p.out, line)
}

// dateFormatMessage reports a date-syntax outcome for the named field
// ("START" or "END").
func (p *Prompter) dateFormatMessage(field string, o Outcome) {
	switch o {
	case OutcomeBadFormat:
		p.say(`Incorrect format for ` + field + ` date: must be "YYYYMMDD". Try again.`)
	case OutcomeWrongLength:
		p.say(`Incorrect number of digits in ` + field + ` date: must be "YYYYMMDD". Try again.`)
	}
}

// date runs the single-date retry loop for the named field.
func (p *Prompter) date(field string) (string, error) {
	for {
		value, err := p.ask("Enter 8-digit " + field + " date for data in YYYYMMDD format: ")
		if err != nil {
			return "", err
		}
		outcome := CheckDateFormat(value)
		if outcome == OutcomeOK {
			return value, nil
		}
		p.dateFormatMessage(field, outcome)
	}
}

// ObservationDates collects the start and end dates. A failed range check
// re-requests both dates, not just the end date.
func (p *Prompter) ObservationDates() (DateRange, error) {
	for {
		startDate, err := p.date("START")
		if err != nil {
			return DateRange{}, err
		}
		endDate, err := p.date("END")
		if err != nil {
			return DateRange{}, err
		}
		switch CheckDateRange(startDate, endDate, p.Now()) {
		case OutcomeOK:
			return DateRange{Start: ParseDate(startDate), End: ParseDate(endDate)}, nil
		case OutcomeEndBeforeStart:
			p.say("The entered end date is earlier than the start date. Try again.")
		case OutcomeEndInFuture:
			p.say("The entered end date is in the future. Try again.")
		}
	}
}

// Choice collects one member of a fixed allowed set, printing badMessage and
// retrying on anything else. Matching is case-sensitive.
func (p *Prompter) Choice(question string, allowed []string, badMessage string) (string, error) {
	for {
		value, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if CheckChoice(value, allowed) == OutcomeOK {
			return value, nil
		}
		p.say(badMessage)
	}
}

// ChoiceDefault is Choice with a default: a blank line accepts def. def must
// itself be a member of the allowed set.
func (p *Prompter) ChoiceDefault(question string, allowed []string, def, badMessage string) (string, error) {
	for {
		value, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if value == "" {
			return def, nil
		}
		if CheckChoice(value, allowed) == OutcomeOK {
			return value, nil
		}
		p.say(badMessage)
	}
}

// Directory collects the path of an existing local directory. The query
// describes what the directory is for, e.g. "to save downloaded files".
func (p *Prompter) Directory(query string) (string, error) {
	for {
		value, err := p.ask("Enter name of directory " + query + " (e.g., D:/Data/):")
		if err != nil {
			return "", err
		}
		switch CheckDirectory(value) {
		case OutcomeOK:
			return value, nil
		case OutcomeDoesNotExist:
			p.say("The entered directory does not exist. Try again.")
		case OutcomeEmpty:
			p.say("The field for the directory is blank. Try again.")
		case OutcomeSyntaxError:
			p.say("There is a syntax error in the entered directory name. Try again.")
		}
	}
}

// IntInRange collects an integer within [min, max] inclusive.
func (p *Prompter) IntInRange(question string, min, max int, badMessage string) (int, error) {
	for {
		value, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n < min || n > max {
			p.say(badMessage)
			continue
		}
		return n, nil
	}
}

// IntInRangeDefault is IntInRange with a default: a blank line accepts def.
func (p *Prompter) IntInRangeDefault(question string, def, min, max int, badMessage string) (int, error) {
	for {
		value, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		if value == "" {
			return def, nil
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n < min || n > max {
			p.say(badMessage)
			continue
		}
		return n, nil
	}
}

// affirmatives is the fixed set of answers treated as "yes" by Confirm.
// Anything else is a decline.
var affirmatives = []string{"yes", "YES", "Yes", "y", "Y"}

// Confirm asks a yes/no question. Only members of the affirmative set count
// as consent.
func (p *Prompter) Confirm(question string) (bool, error) {
	value, err := p.ask(question)
	if err != nil {
		return false, err
	}
	return CheckChoice(value, affirmatives) == OutcomeOK, nil
}
