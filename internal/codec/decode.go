// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codec turns raw program output into canonical typed results. It
// owns the dispatch loop over registered extraction routines and the
// assembly of extracted fields into one immutable result.
// Implements: prd002-decode; docs/ARCHITECTURE § Decode Engine.
package codec

import (
	"fmt"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/internal/parsers"
	"github.com/pdiddy/qcdecode/internal/registry"
	"github.com/pdiddy/qcdecode/pkg/types"
)

// Request names what to decode: the program that produced the output, the
// calculation category, the fields wanted (empty means every field
// declared for the calctype), and at least one artifact source.
type Request struct {
	// Program identifies the external program whose output is supplied.
	Program types.Program

	// CalcType is the calculation category.
	CalcType types.CalcType

	// Fields is the set of fields to extract. Empty selects every field
	// declared for CalcType.
	Fields []types.Field

	// Stdout is the full console text of the run, if available.
	Stdout *string

	// Dir is the program's output directory, if available.
	Dir string

	// Input, when supplied, is echoed into the result's provenance.
	Input *types.CalcInput
}

// NewDefaultRegistry builds a registry holding every routine this module
// ships. Build it once at startup; it is safe for unbounded concurrent
// lookups afterwards.
func NewDefaultRegistry() (*registry.Registry, error) {
	r := registry.New()
	if err := parsers.RegisterAll(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Decode answers one request against an immutable registry. Each call is
// an independent stateless read: it owns its artifact sequence, runs pure
// routines against it, and returns a fresh result, so concurrent calls
// need no coordination.
//
// Per requested field the candidates run in descending preference order.
// A routine reporting its pattern absent merely does not apply; a routine
// reporting malformed content is recorded but the next candidate still
// runs. The first success wins and remaining candidates are skipped. If
// every candidate for a mandatory field is exhausted, the whole request
// fails with an AggregateError carrying each failed field and its last
// observed cause; exhausted optional fields are simply absent.
func Decode(reg *registry.Registry, req Request) (*types.Result, error) {
	if !types.KnownCalcType(req.CalcType) {
		return nil, fmt.Errorf("unknown calctype %q", req.CalcType)
	}

	src, err := artifact.NewSource(req.Stdout, req.Dir, reg.Collector(req.Program))
	if err != nil {
		return nil, err
	}
	// One forward pass; payloads are text or paths, cheap to hold.
	arts := src.Drain()

	fields := req.Fields
	if len(fields) == 0 {
		fields = types.FieldsFor(req.CalcType)
	}

	extracted := make(map[types.Field]any)
	failures := make(map[types.Field]error)

	for _, f := range fields {
		candidates := reg.Lookup(req.Program, req.CalcType, f)

		var lastErr error
		if len(candidates) == 0 {
			lastErr = fmt.Errorf("no routine registered for field %q", f)
		}

		for _, cand := range candidates {
			art, ok := firstArtifact(arts, cand.Filetype)
			if !ok {
				lastErr = fmt.Errorf("no %s artifact supplied", cand.Filetype)
				continue
			}
			val, err := cand.Parse(art)
			if err == nil {
				extracted[f] = val
				break
			}
			// Both pattern-absent and malformed content advance to the
			// next candidate; only the cause differs.
			lastErr = err
		}

		if _, ok := extracted[f]; !ok && types.Mandatory(req.CalcType, f) {
			failures[f] = lastErr
		}
	}

	if len(failures) > 0 {
		return nil, &AggregateError{
			Program:  req.Program,
			CalcType: req.CalcType,
			Failures: failures,
		}
	}

	return assemble(req.Program, req.CalcType, extracted, req.Input)
}

// firstArtifact returns the first artifact of the wanted filetype, in
// yield order.
func firstArtifact(arts []artifact.RawArtifact, ft artifact.Filetype) (artifact.RawArtifact, bool) {
	for _, a := range arts {
		if a.Filetype == ft {
			return a, true
		}
	}
	return artifact.RawArtifact{}, false
}
