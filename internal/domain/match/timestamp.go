package match

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	naiveLayout     = "2006-01-02T15:04:05"
	naiveNanoLayout = "2006-01-02T15:04:05.999999999"
	// datetime-local form inputs omit seconds.
	formLayout = "2006-01-02T15:04"
	sqlLayout  = "2006-01-02 15:04:05"
)

// Timestamp is a match kick-off time. Values without a zone keep their wall
// clock and are placed in the site time zone when displayed.
type Timestamp struct {
	time.Time
	Zoned bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Zoned: true}
}

// ParseTimestamp accepts RFC 3339, ISO 8601 without a zone and the
// datetime-local form format. Blank input yields the zero value.
func ParseTimestamp(raw string) (Timestamp, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Timestamp{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return Timestamp{Time: t, Zoned: true}, nil
	}
	for _, layout := range []string{naiveNanoLayout, naiveLayout, formLayout, sqlLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("parse match timestamp %q: unsupported format", raw)
}

// In returns the instant in loc. Naive values are read as wall clock in loc.
func (t Timestamp) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if t.Zoned {
		return t.Time.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// FormValue renders the value for a datetime-local input.
func (t Timestamp) FormValue(loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(formLayout)
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	if t.Zoned {
		return t.Time.Format(time.RFC3339)
	}
	return t.Time.Format(naiveLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("match timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan reads TIMESTAMP columns, which lib/pq returns in UTC without a zone.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
	case time.Time:
		*t = Timestamp{Time: v}
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
	default:
		return fmt.Errorf("scan match timestamp: unsupported type %T", src)
	}
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if t.Zoned {
		return t.Time.UTC(), nil
	}
	return t.Time.Format(naiveLayout), nil
}
