package servers

import (
	"bytes"
	"fmt"
	"time"
)

// TimestampLayout is the wire format of every date in the API: UTC with
// millisecond precision and a literal Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that marshals as TimestampLayout. Unmarshal also
// accepts RFC 3339 with any offset and zone-less values, which are taken as UTC.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", data)
	}

	parsed, err := ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseTimestamp parses s the way Timestamp.UnmarshalJSON does.
func ParseTimestamp(s string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return parsed.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.000", "2006-01-02T15:04:05"} {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a timestamp like %s", s, TimestampLayout)
}
