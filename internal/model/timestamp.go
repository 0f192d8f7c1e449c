// internal/model/timestamp.go
package model

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// Timestamp decodes the backend's datetimes, which may come with or without
// a zone offset ("2024-03-01T09:30:00" from naive DB columns).
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*t = Timestamp{}
		return nil
	}
	raw, err := strconv.Unquote(s)
	if err != nil {
		return errors.Wrapf(err, "timestamp %s is not a string", s)
	}
	parsed, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return errors.Wrapf(err, "parse timestamp %q", raw)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
