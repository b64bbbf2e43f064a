package isotime

import (
	"fmt"
	"strings"
	"time"
)

// TargetOffset is the fixed shift applied by Normalize (UTC to +09:00 wall time).
const TargetOffset = 9 * time.Hour

// zeroOffset is stripped from normalized values.
const zeroOffset = "+00:00"

var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15Z07:00",
		"2006-01-02 15:04:05.999999999Z07:00",
		// Basic offsets (+0900).
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02 15:04:05.999999999Z0700",
		"2006-01-02T15:04Z0700",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02T15",
		"2006-01-02",
	}
)

// Stamp is a parsed timestamp. Naive stamps carry no offset.
type Stamp struct {
	time.Time
	Naive bool
}

// Parse reads an ISO-8601 timestamp with or without an offset.
func Parse(s string) (Stamp, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Stamp{Time: t}, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Stamp{Time: t, Naive: true}, nil
		}
	}
	return Stamp{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// Valid reports whether s parses as an ISO-8601 timestamp.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String serializes the stamp.
func (s Stamp) String() string {
	var b strings.Builder
	b.WriteString(s.Time.Format("2006-01-02T15:04:05"))
	if us := s.Time.Nanosecond() / int(time.Microsecond); us != 0 {
		fmt.Fprintf(&b, ".%06d", us)
	}
	if !s.Naive {
		b.WriteString(s.Time.Format("-07:00"))
	}
	return b.String()
}

// Add returns the stamp shifted by d, keeping its offset.
func (s Stamp) Add(d time.Duration) Stamp {
	return Stamp{Time: s.Time.Add(d), Naive: s.Naive}
}

// Normalize shifts a UTC timestamp by TargetOffset and serializes it, dropping
// a trailing "+00:00". The transform is one-way: feeding its output back in
// shifts the value again.
func Normalize(s string) (string, error) {
	stamp, err := Parse(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(stamp.Add(TargetOffset).String(), zeroOffset), nil
}

// Local serializes t as a naive local wall-clock timestamp.
func Local(t time.Time) string {
	return Stamp{Time: t, Naive: true}.String()
}
