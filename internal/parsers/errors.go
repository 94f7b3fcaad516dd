// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parsers

import "fmt"

// NoMatchError signals that a routine's pattern is absent from otherwise
// acceptable content. It means "this routine does not apply here", not
// "the content is corrupt"; the dispatcher advances to the next candidate.
type NoMatchError struct {
	Pattern string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("pattern not found: %s", e.Pattern)
}

// MalformedError signals that the pattern region was located but its
// numeric or structural shape is wrong. The dispatcher records it and may
// still fall back to another artifact kind for the same field.
type MalformedError struct {
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed content: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed content: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}
