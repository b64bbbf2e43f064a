// Package isotime parses and serializes ISO-8601 timestamps the way the
// listing API and the persisted store exchange them.
//
// Serialized values use the extended format with a "T" separator, a six-digit
// fraction only when the sub-second part is non-zero, and a "±HH:MM" offset
// only when the source value carried one.
//
// # Accepted Input
//
// Parse accepts extended and basic offsets ("+09:00", "+0900", "Z"), a space
// in place of the "T" separator, and values truncated to the minute or the
// hour. A zero offset is treated like a value without one.
//
// # Usage
//
//	s, err := isotime.Normalize("2024-09-03T03:34:56Z")
//	// s == "2024-09-03T12:34:56"
//
//	now := isotime.Local(time.Now())
package isotime
