package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// DisplayLayout renders DD-MM-YYYY HH:MM:SS.
	DisplayLayout = "02-01-2006 15:04:05"
	isoLayout     = "2006-01-02T15:04:05Z"
)

// IST is the fixed UTC+5:30 display zone. No DST rules apply.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// FromEpochMillis floors ms to whole seconds and formats the instant in IST.
func FromEpochMillis(ms int64) (string, error) {
	sec := ms / 1000
	if ms%1000 < 0 {
		sec--
	}
	return display(time.Unix(sec, 0))
}

// display renders t in IST. The layout has a four-digit year, so the instant
// must fall within years 1..9999 both in UTC and in IST.
func display(t time.Time) (string, error) {
	local := t.In(IST)
	for _, y := range []int{t.UTC().Year(), local.Year()} {
		if y < 1 || y > 9999 {
			return "", fmt.Errorf("%w: year %d out of range 1..9999", ErrInvalidTimestamp, y)
		}
	}
	return local.Format(DisplayLayout), nil
}

// FromISO parses s strictly as YYYY-MM-DDTHH:MM:SSZ and formats it in IST.
func FromISO(s string) (string, error) {
	// time.Parse tolerates fractional seconds the layout does not name.
	if !isoPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q does not match YYYY-MM-DDTHH:MM:SSZ", ErrInvalidTimestamp, s)
	}
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
	}
	return display(t.UTC())
}

// Normalize converts the raw JSON time value into the display string. A JSON
// integer is epoch milliseconds; a JSON string must be ISO-8601 UTC.
func Normalize(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
	}

	switch tv := v.(type) {
	case json.Number:
		ms, err := strconv.ParseInt(tv.String(), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %s is not integer epoch milliseconds", ErrInvalidTimestamp, tv)
		}
		return FromEpochMillis(ms)
	case string:
		return FromISO(tv)
	default:
		return "", fmt.Errorf("%w: unsupported time value %s", ErrInvalidTimestamp, string(raw))
	}
}
