package view

import "time"

// Layouts the datetime template filter can render. "full" spells out the
// weekday and month; "medium" abbreviates both.
const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

var parseLayouts = []string{
	time.RFC3339,
	startTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDatetime renders a raw timestamp string with the named format
// ("full" or "medium", defaulting to medium). Unparseable input is
// returned untouched so a bad row never breaks a page.
func FormatDatetime(value, format string) string {
	t, err := parseDatetime(value)
	if err != nil {
		return value
	}
	if format == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

func parseDatetime(value string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range parseLayouts {
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return t, err
}
