// Package utils provides loose value conversions for decoded JSON payloads.
//
// Listing API values arrive as strings, json.Number or booleans depending on
// the field and the decoder; these helpers coerce them to the Go types the
// record model expects.
package utils
