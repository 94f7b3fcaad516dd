// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifact models the raw output units a program run leaves behind
// and iterates over them in a single forward pass.
// Implements: prd002-decode (R2); docs/ARCHITECTURE § Artifacts.
package artifact

import (
	"fmt"
	"os"
)

// Filetype tags the shape of one raw output unit. Stdout is shared by all
// programs; auxiliary filetypes are declared by each program's parser set.
type Filetype string

// FiletypeStdout is the console/log text of a program run.
const FiletypeStdout Filetype = "stdout"

// RawArtifact is one raw output unit. Exactly one payload is set: Text for
// console content, Path for an on-disk auxiliary file.
type RawArtifact struct {
	Filetype Filetype
	Text     string
	Path     string
}

// Collector enumerates the auxiliary files in an output directory that are
// relevant to one program, ignoring anything it does not recognize.
type Collector func(dir string) ([]RawArtifact, error)

// InputError reports an unusable artifact source supplied by the caller,
// such as a directory path that does not exist.
type InputError struct {
	Path   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s: %s", e.Path, e.Reason)
}

// Source is a finite, single-pass sequence of raw artifacts. It is not
// restartable: directory entries may be consumed as they are yielded.
type Source struct {
	pending []RawArtifact
}

// NewSource builds the artifact sequence for one request. Console text, if
// supplied, is yielded first. A supplied directory is validated up front:
// if it does not exist or is not a directory, an InputError is returned
// before anything is yielded. With neither source the sequence is empty.
func NewSource(stdout *string, dir string, collect Collector) (*Source, error) {
	var pending []RawArtifact

	if stdout != nil {
		pending = append(pending, RawArtifact{Filetype: FiletypeStdout, Text: *stdout})
	}

	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, &InputError{Path: dir, Reason: "does not exist or is not a directory"}
		}
		if collect != nil {
			files, err := collect(dir)
			if err != nil {
				return nil, err
			}
			pending = append(pending, files...)
		}
	}

	return &Source{pending: pending}, nil
}

// Next returns the next artifact, or false when the sequence is exhausted.
func (s *Source) Next() (RawArtifact, bool) {
	if len(s.pending) == 0 {
		return RawArtifact{}, false
	}
	a := s.pending[0]
	s.pending = s.pending[1:]
	return a, true
}

// Drain consumes the remainder of the sequence in order.
func (s *Source) Drain() []RawArtifact {
	out := s.pending
	s.pending = nil
	return out
}
