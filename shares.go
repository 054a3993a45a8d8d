package marketcap

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mau1878/marketcapmanual/date"
)

// this file parses the pasted "shares outstanding" text block.

// SharesScale converts the pasted "shares in millions" values into absolute
// share counts.
const SharesScale = 1_000_000

// ErrNoSamples is returned when an input block contains no valid share sample
// at all. Callers must not proceed to the merge or plot steps.
var ErrNoSamples = errors.New("no valid share samples in input")

// BadValueError reports a line whose date parsed but whose share-count field
// did not. It is a hard error: a recognized date with a broken number is more
// likely a pasting accident than noise, and silently coercing it would
// corrupt the series.
type BadValueError struct {
	Line  int       // 1-based line number in the input block
	Date  date.Date // the date that parsed successfully
	Value string    // the offending share-count text
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("line %d (%s): invalid share count %q", e.Line, e.Date, e.Value)
}

// ParseShares parses a pasted block of lines in the "date<TAB>millions"
// format into a share-count series scaled to absolute counts.
//
// Lines whose first field is not a parseable date are dropped silently and
// only counted in 'dropped'; blank lines are skipped without counting.
// Duplicate dates are resolved last-row-wins. When no valid sample survives,
// ParseShares returns ErrNoSamples.
func ParseShares(raw string) (shares date.History[float64], dropped int, err error) {
	line := 0
	scanner := bufio.NewScanner(strings.NewReader(strings.TrimSpace(raw)))
	for scanner.Scan() {
		line++
		row := scanner.Text()
		if strings.TrimSpace(row) == "" {
			continue
		}

		field, rest, _ := strings.Cut(row, "\t")
		on, dateErr := date.Parse(strings.TrimSpace(field))
		if dateErr != nil {
			// Best-effort policy: a row without a leading date is noise
			// (header, footnote, stray paste), not an error.
			dropped++
			continue
		}

		value, valueErr := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if valueErr != nil {
			return shares, dropped, &BadValueError{Line: line, Date: on, Value: strings.TrimSpace(rest)}
		}

		shares.Append(on, value*SharesScale)
	}

	if shares.Len() == 0 {
		return shares, dropped, ErrNoSamples
	}
	return shares, dropped, nil
}

// BuildDailyShares parses a pasted share block and resamples it to a
// gap-free daily series in one call.
func BuildDailyShares(raw string) (daily date.History[float64], dropped int, err error) {
	samples, dropped, err := ParseShares(raw)
	if err != nil {
		return daily, dropped, err
	}
	return ResampleDaily(samples), dropped, nil
}
