// Package finder locates values by key inside arbitrarily nested JSON-like
// structures whose shape is not statically known.
//
// # Containers
//
// A container is walked recursively. Mapping levels are Object (ordered, as
// produced by Decode) or map[string]any (visited in sorted key order).
// Sequence levels are []any. Every other value is a leaf and contributes nothing.
//
// # Matching
//
// At each mapping level, a key equal to the target appends its value to the
// result before the walk descends into that value, so results are in pre-order:
// parent before children, siblings left to right.
//
// Descent into a mapping child is gated by the Allow and Deny options. Allow
// restricts descent to the listed keys, Deny forbids it. Neither affects the
// match at the current level, and neither applies to sequence elements.
// Allow("") is the idiom for "look at the immediate children of the root only".
//
// # Usage
//
//	entry, _ := finder.Decode(payload)
//	all := finder.FindAll(entry, "username")
//	id, err := finder.FindOne(entry, "id", finder.Allow(""))
//	if errors.Is(err, finder.ErrAmbiguous) {
//	    // more than one "id" at the top level
//	}
package finder
