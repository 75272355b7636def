package ingest

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"
	"time"
)

func TestFromEpochMillis(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		// 1700000000000 ms = 2023-11-14T22:13:20Z
		{1700000000000, "15-11-2023 03:43:20"},
		{1700000000999, "15-11-2023 03:43:20"},
		{0, "01-01-1970 05:30:00"},
		{-1000, "01-01-1970 05:29:59"},
		{-1500, "01-01-1970 05:29:58"},
		{-1, "01-01-1970 05:29:59"},
		// 9999-12-31T18:29:59Z is the last second that still shows year 9999 in IST.
		{253402280999000, "31-12-9999 23:59:59"},
		// 0001-01-01T00:00:00Z
		{-62135596800000, "01-01-0001 05:30:00"},
	}
	for _, tt := range tests {
		got, err := FromEpochMillis(tt.ms)
		if err != nil {
			t.Fatalf("FromEpochMillis(%d) error: %v", tt.ms, err)
		}
		if got != tt.want {
			t.Fatalf("FromEpochMillis(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFromEpochMillisYearRange(t *testing.T) {
	bad := []int64{
		253402281000000, // 10000-01-01 00:00:00 IST
		253402300800000, // 10000-01-01T00:00:00Z
		math.MaxInt64,   // year 292278994
		-62135596801000, // 0000-12-31T23:59:59Z, year 1 only after the IST shift
		math.MinInt64,
	}
	for _, ms := range bad {
		if got, err := FromEpochMillis(ms); !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("FromEpochMillis(%d) = %q, expected ErrInvalidTimestamp, got %v", ms, got, err)
		}
	}
}

func TestFromISO(t *testing.T) {
	got, err := FromISO("2023-11-14T22:13:20Z")
	if err != nil {
		t.Fatalf("FromISO error: %v", err)
	}
	if got != "15-11-2023 03:43:20" {
		t.Fatalf("unexpected display time %q", got)
	}

	got, err = FromISO("2024-02-29T20:00:00Z")
	if err != nil {
		t.Fatalf("FromISO error: %v", err)
	}
	if got != "01-03-2024 01:30:00" {
		t.Fatalf("expected day rollover, got %q", got)
	}
}

func TestFromISORejectsOtherShapes(t *testing.T) {
	bad := []string{
		"",
		"2023-11-14 22:13:20",
		"2023-11-14T22:13:20",
		"2023-11-14T22:13:20.500Z",
		"2023-11-14T22:13:20+00:00",
		"2023-1-14T22:13:20Z",
		"2023-13-14T22:13:20Z",
		"2023-02-30T22:13:20Z",
		"1700000000000",
		"0000-01-01T00:00:00Z",
		"9999-12-31T23:00:00Z",
	}
	for _, s := range bad {
		if _, err := FromISO(s); !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("FromISO(%q): expected ErrInvalidTimestamp, got %v", s, err)
		}
	}
}

func TestNormalizeFormatsAgree(t *testing.T) {
	instants := []time.Time{
		time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 18, 30, 0, 0, time.UTC),
		time.Date(1999, 6, 15, 23, 59, 59, 0, time.UTC),
	}
	for _, ts := range instants {
		fromMs, err := Normalize(json.RawMessage(strconv.FormatInt(ts.UnixMilli(), 10)))
		if err != nil {
			t.Fatalf("Normalize epoch error: %v", err)
		}
		iso, _ := json.Marshal(ts.Format("2006-01-02T15:04:05Z"))
		fromISO, err := Normalize(iso)
		if err != nil {
			t.Fatalf("Normalize iso error: %v", err)
		}
		if fromMs != fromISO {
			t.Fatalf("formats disagree for %s: %q vs %q", ts, fromMs, fromISO)
		}
		if want := ts.Add(5*time.Hour + 30*time.Minute).Format(DisplayLayout); fromMs != want {
			t.Fatalf("expected %q, got %q", want, fromMs)
		}
	}
}

func TestNormalizeRejects(t *testing.T) {
	bad := []string{
		`1700000000000.5`,
		`1.7e12`,
		`true`,
		`{"ms":1}`,
		`[1]`,
		`"yesterday"`,
		`99999999999999999999999`,
		`253402300800000`,
		`9223372036854775807`,
		`-62135596801000`,
		`"0000-01-01T00:00:00Z"`,
		``,
	}
	for _, raw := range bad {
		if _, err := Normalize(json.RawMessage(raw)); !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("Normalize(%s): expected ErrInvalidTimestamp, got %v", raw, err)
		}
	}
}
