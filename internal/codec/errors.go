// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/qcdecode/pkg/types"
)

// AggregateError is the terminal failure of one decode request: one or
// more mandatory fields could not be extracted. It carries every failed
// field together with the last cause observed while trying its candidates.
type AggregateError struct {
	Program  types.Program
	CalcType types.CalcType
	Failures map[types.Field]error
}

func (e *AggregateError) Error() string {
	fields := make([]string, 0, len(e.Failures))
	for f := range e.Failures {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %v", f, e.Failures[types.Field(f)]))
	}
	return fmt.Sprintf("decode %s/%s failed: %s", e.Program, e.CalcType, strings.Join(parts, "; "))
}

// ConsistencyError reports an assembled result that violates a cross-field
// invariant, such as a gradient whose length disagrees with the structure's
// atom count. The assembler never truncates or coerces to hide one.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return "inconsistent result: " + e.Reason
}
