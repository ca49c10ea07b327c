package entry

import "regexp"

// durationTextPattern matches the H:MM duration input format
// (hours, colon, two-digit minutes), e.g. "1:30", "0:45", "10:05".
var durationTextPattern = regexp.MustCompile(`^(\d+):([0-5]\d)$`)

// MaxDurationMinutes is the maximum allowed duration per entry (24 hours)
const MaxDurationMinutes = 24 * 60

// Timing is the canonical start/end/duration triple derived from partial
// timing input. Start and End are nil when only a duration was supplied.
type Timing struct {
	Start    *Clock
	End      *Clock
	Duration Minutes
}

// ParseDurationText parses a duration in H:MM format and returns the
// duration in minutes.
// Valid inputs: "1:30" (returns 90), "0:45" (returns 45)
// Invalid inputs: "90", "1:5", "1h30m", zero or values exceeding 24h
func ParseDurationText(input string) (Minutes, error) {
	matches := durationTextPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, &ValidationError{Field: "duration", Reason: "malformed duration"}
	}

	var hours, mins int
	for _, r := range matches[1] {
		hours = hours*10 + int(r-'0')
	}
	for _, r := range matches[2] {
		mins = mins*10 + int(r-'0')
	}

	minutes := Minutes(hours*60 + mins)
	if minutes == 0 {
		return 0, &ValidationError{Field: "duration", Reason: "duration cannot be zero"}
	}
	if minutes > MaxDurationMinutes {
		return 0, &ValidationError{Field: "duration", Reason: "exceeds maximum of 24 hours"}
	}

	return minutes, nil
}

// ResolveTiming derives the canonical timing triple from whatever subset
// of {start, end, durationText} was supplied. It is a pure function.
//
// The accepted combinations, in order:
//   - start and end: duration is end minus start. A reversed interval
//     (end before start) is rejected rather than interpreted as a
//     day rollover.
//   - start and durationText: end is start plus the parsed duration.
//   - durationText alone: start and end stay unset.
//
// Anything else fails with a ValidationError.
func ResolveTiming(start, end *Clock, durationText string) (Timing, error) {
	switch {
	case start != nil && end != nil:
		if *end < *start {
			return Timing{}, &ValidationError{Field: "end", Reason: "end is before start"}
		}
		duration := Minutes(*end - *start)
		if duration == 0 {
			return Timing{}, &ValidationError{Field: "duration", Reason: "duration cannot be zero"}
		}
		return Timing{Start: start, End: end, Duration: duration}, nil

	case start != nil && durationText != "":
		duration, err := ParseDurationText(durationText)
		if err != nil {
			return Timing{}, err
		}
		resolved := *start + Clock(duration)
		if resolved >= MinutesPerDay {
			return Timing{}, &ValidationError{Field: "end", Reason: "interval extends past midnight"}
		}
		return Timing{Start: start, End: &resolved, Duration: duration}, nil

	case start == nil && end == nil && durationText != "":
		duration, err := ParseDurationText(durationText)
		if err != nil {
			return Timing{}, err
		}
		return Timing{Duration: duration}, nil

	default:
		return Timing{}, &ValidationError{Field: "timing", Reason: "missing timing information"}
	}
}
