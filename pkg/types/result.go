// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CalcInput is the input specification that produced a program's output.
// The decoder never reads it; it is echoed verbatim into provenance so a
// result can be traced back to the calculation that produced it.
type CalcInput struct {
	// Method is the level of theory (e.g. "CCSD(T)-F12").
	Method string `json:"method,omitempty" yaml:"method,omitempty"`

	// Basis is the basis set (e.g. "cc-pVTZ-F12").
	Basis string `json:"basis,omitempty" yaml:"basis,omitempty"`

	// Charge is the total molecular charge.
	Charge int `json:"charge" yaml:"charge"`

	// Multiplicity is the spin multiplicity.
	Multiplicity int `json:"multiplicity,omitempty" yaml:"multiplicity,omitempty"`

	// Keywords holds raw program-specific input keywords.
	Keywords map[string]string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Provenance records what produced a decoded result.
type Provenance struct {
	// Program identifies the external program whose output was decoded.
	Program Program `json:"program" yaml:"program"`

	// CalcType is the calculation category of the request.
	CalcType CalcType `json:"calctype" yaml:"calctype"`

	// Input is the originating input specification, if the caller supplied
	// one.
	Input *CalcInput `json:"input,omitempty" yaml:"input,omitempty"`
}

// Results holds the typed quantities extracted from program output, in
// atomic units (Hartree, Bohr). A nil or empty field was not computed;
// absence is never a zero (R2.2).
type Results struct {
	// Energy is the electronic energy in Hartree.
	Energy *float64 `json:"energy,omitempty" yaml:"energy,omitempty"`

	// Gradient holds 3N first derivatives in Hartree/Bohr.
	Gradient []float64 `json:"gradient,omitempty" yaml:"gradient,omitempty"`

	// Hessian holds (3N)^2 second derivatives in Hartree/Bohr^2,
	// row-major.
	Hessian []float64 `json:"hessian,omitempty" yaml:"hessian,omitempty"`

	// Structure is the molecular geometry, if extracted.
	Structure *Structure `json:"structure,omitempty" yaml:"structure,omitempty"`
}

// Result is the canonical decoded output for one request: the calctype,
// the extracted fields, and provenance. Results are created fresh per
// request and never mutated after assembly.
type Result struct {
	CalcType   CalcType   `json:"calctype" yaml:"calctype"`
	Results    Results    `json:"results" yaml:"results"`
	Provenance Provenance `json:"provenance" yaml:"provenance"`
}
