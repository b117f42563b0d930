package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted textual date forms. Numbers longer than a year are unix
// milliseconds, so "2024" means the year.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

const maxYearDigits = 4

// DateError is returned for values no accepted form can parse.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q: use RFC 3339, YYYY-MM-DD or unix milliseconds", e.Value)
}

// ParseDate parses a date in any accepted form. Values without a zone are UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &DateError{Value: value}
	}

	if len(value) > maxYearDigits {
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &DateError{Value: value}
}

// Date is a JSON date field that accepts a string in any form ParseDate
// understands or a number of unix milliseconds.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	t, err := ParseDate(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
