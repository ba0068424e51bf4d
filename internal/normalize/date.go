package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Now is the clock used for the unparseable-date fallback. It is a package
// variable so tests can pin it; it is the only source of non-determinism in
// the whole parsing pipeline.
var Now = time.Now

// Recognized date shapes, in priority order.
var (
	// Already-canonical YYYY-MM-DD
	dateISO = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	// DD/MM/YYYY, DD-MM-YYYY and two-digit-year variants
	dateDMY = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})\b`)
	// YYYY/MM/DD with single- or double-digit month/day
	dateYMD = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	// DD Mon YYYY, DD-Mon-YYYY, DD Month YYYY (English month names)
	dateText = regexp.MustCompile(`(?i)\b(\d{1,2})[-/ ]((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*),?[-/ ](\d{2,4})\b`)
)

// monthNumbers resolves English month names and abbreviations by their
// first three letters.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// Date normalizes a date-shaped fragment to canonical YYYY-MM-DD form.
// If no recognized pattern matches it returns today's date; parsing never
// fails, callers that care about exact dates must treat the fallback as a
// degraded-confidence signal.
func Date(s string) string {
	if d, ok := TryDate(s); ok {
		return d
	}
	return Now().Format("2006-01-02")
}

// TryDate is Date without the today fallback. Parsers that refuse to emit
// dateless lines use this to tell "no date" apart from the fallback.
func TryDate(s string) (string, bool) {
	s = strings.TrimSpace(s)

	if m := dateISO.FindStringSubmatch(s); m != nil {
		return m[0], true
	}
	// DMY must be tried before YMD: its first group is 1-2 digits so a
	// four-digit leading year never matches it.
	if m := dateDMY.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", expandYear(m[3]), pad2(m[2]), pad2(m[1])), true
	}
	if m := dateYMD.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3])), true
	}
	if m := dateText.FindStringSubmatch(s); m != nil {
		month, ok := monthNumbers[strings.ToLower(m[2])[:3]]
		if !ok {
			month = "01"
		}
		return fmt.Sprintf("%s-%s-%s", expandYear(m[3]), month, pad2(m[1])), true
	}
	return "", false
}

// FindDate returns the first date-shaped fragment found anywhere in a line.
func FindDate(line string) (string, bool) {
	for _, re := range []*regexp.Regexp{dateISO, dateDMY, dateYMD, dateText} {
		if m := re.FindString(line); m != "" {
			return m, true
		}
	}
	return "", false
}

// FindNumericDate is the narrower variant used by the wallet parser: only
// the ISO and day-first numeric shapes count, so free-form text with month
// names in running prose does not trigger a transaction.
func FindNumericDate(line string) (string, bool) {
	if m := dateISO.FindString(line); m != "" {
		return m, true
	}
	if m := dateDMY.FindString(line); m != "" {
		return m, true
	}
	return "", false
}

// expandYear widens a two-digit year: values above 50 become 19xx,
// everything else 20xx.
func expandYear(y string) string {
	if len(y) == 4 {
		return y
	}
	n, err := strconv.Atoi(y)
	if err != nil {
		return y
	}
	if n > 50 {
		return fmt.Sprintf("19%02d", n)
	}
	return fmt.Sprintf("20%02d", n)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
