// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"fmt"

	"github.com/pdiddy/qcdecode/pkg/types"
)

// assemble merges extracted fields into one canonical result: it applies
// the fixed unit table for the program, checks cross-field dimensional
// consistency, and attaches provenance. A field missing from extracted is
// absent from the result; it is never defaulted.
func assemble(p types.Program, ct types.CalcType, extracted map[types.Field]any, input *types.CalcInput) (*types.Result, error) {
	profile, ok := unitProfiles[p]
	if !ok {
		return nil, &ConsistencyError{Reason: fmt.Sprintf("no unit profile for program %q", p)}
	}

	res := &types.Result{
		CalcType: ct,
		Provenance: types.Provenance{
			Program:  p,
			CalcType: ct,
			Input:    input,
		},
	}

	if v, ok := extracted[types.FieldEnergy]; ok {
		e, ok := v.(float64)
		if !ok {
			return nil, &ConsistencyError{Reason: fmt.Sprintf("energy has type %T, want float64", v)}
		}
		e *= profile.energyToHartree
		res.Results.Energy = &e
	}

	if v, ok := extracted[types.FieldStructure]; ok {
		s, ok := v.(*types.Structure)
		if !ok {
			return nil, &ConsistencyError{Reason: fmt.Sprintf("structure has type %T, want *types.Structure", v)}
		}
		if len(s.Geometry) != 3*len(s.Symbols) {
			return nil, &ConsistencyError{Reason: fmt.Sprintf(
				"structure has %d atoms but %d coordinates", len(s.Symbols), len(s.Geometry))}
		}
		conv := &types.Structure{
			Symbols:  append([]string(nil), s.Symbols...),
			Geometry: make([]float64, len(s.Geometry)),
		}
		for i, c := range s.Geometry {
			conv.Geometry[i] = c * profile.coordsToBohr
		}
		res.Results.Structure = conv
	}

	if v, ok := extracted[types.FieldGradient]; ok {
		g, ok := v.([]float64)
		if !ok {
			return nil, &ConsistencyError{Reason: fmt.Sprintf("gradient has type %T, want []float64", v)}
		}
		if len(g)%3 != 0 {
			return nil, &ConsistencyError{Reason: fmt.Sprintf("gradient length %d is not a multiple of 3", len(g))}
		}
		if s := res.Results.Structure; s != nil && len(g) != 3*s.NumAtoms() {
			return nil, &ConsistencyError{Reason: fmt.Sprintf(
				"gradient length %d does not match %d atoms", len(g), s.NumAtoms())}
		}
		conv := make([]float64, len(g))
		for i, c := range g {
			conv[i] = c * profile.gradientToAtomic
		}
		res.Results.Gradient = conv
	}

	if v, ok := extracted[types.FieldHessian]; ok {
		h, ok := v.([]float64)
		if !ok {
			return nil, &ConsistencyError{Reason: fmt.Sprintf("hessian has type %T, want []float64", v)}
		}
		n := squareDim(len(h))
		if n < 0 {
			return nil, &ConsistencyError{Reason: fmt.Sprintf("hessian length %d is not a perfect square", len(h))}
		}
		if s := res.Results.Structure; s != nil && n != 3*s.NumAtoms() {
			return nil, &ConsistencyError{Reason: fmt.Sprintf(
				"hessian dimension %d does not match %d atoms", n, s.NumAtoms())}
		}
		conv := make([]float64, len(h))
		for i, c := range h {
			conv[i] = c * profile.hessianToAtomic
		}
		res.Results.Hessian = conv
	}

	return res, nil
}

// squareDim returns n for a length of n*n, or -1 if the length is not a
// perfect square.
func squareDim(l int) int {
	for n := 0; n*n <= l; n++ {
		if n*n == l {
			return n
		}
	}
	return -1
}
