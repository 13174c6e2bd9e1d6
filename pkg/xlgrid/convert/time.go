package convert

import (
	"strings"
	"time"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// layouts are the invariant date/time forms accepted when parsing text.
// Single-digit month/day fields also accept zero-padded input.
var layouts = [...]string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1-2-2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
}

func toTime(v models.Value) (time.Time, error) {
	switch v.Kind() {
	case models.KindTime:
		t, _ := v.Timestamp()
		return t, nil
	case models.KindText:
		s, _ := v.Str()
		return parseTime(strings.TrimSpace(s))
	}
	return time.Time{}, errUnsupported
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errBlank
	}
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
