// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry maps (program, filetype, field) keys to extraction
// routines. The table is populated once at startup and read-only
// afterwards, so lookups need no synchronization.
// Implements: prd002-decode (R1); docs/ARCHITECTURE § Registry.
package registry

import (
	"fmt"
	"sort"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/pkg/types"
)

// ParseFunc is one extraction routine: raw artifact content in, typed value
// out. Routines are pure functions over their input and therefore safe to
// invoke concurrently across requests. The returned value's concrete type
// is fixed per field and checked by the assembler.
type ParseFunc func(a artifact.RawArtifact) (any, error)

// Registration binds one extraction routine to the output shape it reads.
// Registrations are immutable once installed.
type Registration struct {
	// Program is the external program whose output the routine reads.
	Program types.Program

	// Filetype is the artifact shape the routine consumes.
	Filetype artifact.Filetype

	// CalcTypes is the set of calculation categories the routine applies to.
	CalcTypes []types.CalcType

	// Field is the quantity the routine extracts.
	Field types.Field

	// Parse is the routine itself.
	Parse ParseFunc

	// Preference ranks the routine among candidates for the same field.
	// Structured auxiliary files carry higher ranks than console text,
	// which is pattern-brittle.
	Preference int
}

// appliesTo reports whether the registration covers the calctype.
func (r Registration) appliesTo(ct types.CalcType) bool {
	for _, c := range r.CalcTypes {
		if c == ct {
			return true
		}
	}
	return false
}

// ConfigurationError reports a startup misconfiguration. A process that
// sees one must not serve requests.
type ConfigurationError struct {
	Program  types.Program
	Filetype artifact.Filetype
	Field    types.Field
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: (%s, %s, %s): %s",
		e.Program, e.Filetype, e.Field, e.Reason)
}

// key is the uniqueness key for registrations.
type key struct {
	program  types.Program
	filetype artifact.Filetype
	field    types.Field
}

// Registry is the capability table. Populate it fully before serving
// requests; it must not be mutated afterwards.
type Registry struct {
	entries    map[key]Registration
	collectors map[types.Program]artifact.Collector
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		entries:    make(map[key]Registration),
		collectors: make(map[types.Program]artifact.Collector),
	}
}

// Register installs one routine. A duplicate (program, filetype, field)
// key is a ConfigurationError and leaves the existing entry unmodified.
func (r *Registry) Register(reg Registration) error {
	k := key{reg.Program, reg.Filetype, reg.Field}
	if _, exists := r.entries[k]; exists {
		return &ConfigurationError{
			Program:  reg.Program,
			Filetype: reg.Filetype,
			Field:    reg.Field,
			Reason:   "duplicate registration",
		}
	}
	r.entries[k] = reg
	return nil
}

// RegisterCollector installs the auxiliary-file enumerator for a program.
// At most one collector per program.
func (r *Registry) RegisterCollector(p types.Program, c artifact.Collector) error {
	if _, exists := r.collectors[p]; exists {
		return &ConfigurationError{Program: p, Reason: "duplicate collector"}
	}
	r.collectors[p] = c
	return nil
}

// Collector returns the auxiliary-file enumerator for a program, or nil if
// the program yields nothing beyond stdout.
func (r *Registry) Collector(p types.Program) artifact.Collector {
	return r.collectors[p]
}

// Lookup returns every routine registered for (program, field) that applies
// to the calctype, ordered by descending preference. Ties break on filetype
// so the order is deterministic.
func (r *Registry) Lookup(p types.Program, ct types.CalcType, f types.Field) []Registration {
	var out []Registration
	for k, reg := range r.entries {
		if k.program != p || k.field != f {
			continue
		}
		if !reg.appliesTo(ct) {
			continue
		}
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Preference != out[j].Preference {
			return out[i].Preference > out[j].Preference
		}
		return out[i].Filetype < out[j].Filetype
	})
	return out
}

// Len returns the number of installed registrations.
func (r *Registry) Len() int {
	return len(r.entries)
}
