// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the domain model shared across the decoder: program
// and calculation identities, requested fields, molecular structures, and
// the canonical result shape.
// Implements: prd001-domain-model; docs/ARCHITECTURE § Domain Model.
package types

// Program identifies an external quantum-chemistry program whose output the
// decoder understands.
type Program string

const (
	ProgramOrca   Program = "orca"
	ProgramMolpro Program = "molpro"
	ProgramMopac  Program = "mopac"
)

// Programs lists every supported program in stable order.
func Programs() []Program {
	return []Program{ProgramOrca, ProgramMolpro, ProgramMopac}
}

// CalcType is the category of a calculation.
type CalcType string

const (
	CalcTypeEnergy       CalcType = "energy"
	CalcTypeGradient     CalcType = "gradient"
	CalcTypeHessian      CalcType = "hessian"
	CalcTypeOptimization CalcType = "optimization"
)

// Field names a single quantity a caller can request from decoded output.
type Field string

const (
	FieldEnergy    Field = "energy"
	FieldGradient  Field = "gradient"
	FieldHessian   Field = "hessian"
	FieldStructure Field = "structure"
)

// fieldSpec records whether a field is mandatory for a calctype.
type fieldSpec struct {
	field     Field
	mandatory bool
}

// calcFields declares, per calctype, which fields a decode attempts and
// which of them are mandatory. A mandatory field that cannot be extracted
// fails the whole request; an optional one is simply absent (R1.3).
var calcFields = map[CalcType][]fieldSpec{
	CalcTypeEnergy: {
		{FieldEnergy, true},
		{FieldStructure, false},
	},
	CalcTypeGradient: {
		{FieldEnergy, true},
		{FieldGradient, true},
		{FieldStructure, false},
	},
	CalcTypeHessian: {
		{FieldEnergy, true},
		{FieldHessian, true},
		{FieldGradient, false},
		{FieldStructure, false},
	},
	CalcTypeOptimization: {
		{FieldEnergy, true},
		{FieldStructure, true},
		{FieldGradient, false},
	},
}

// FieldsFor returns every field declared for the calctype, mandatory first.
func FieldsFor(ct CalcType) []Field {
	specs := calcFields[ct]
	fields := make([]Field, 0, len(specs))
	for _, s := range specs {
		fields = append(fields, s.field)
	}
	return fields
}

// Mandatory reports whether field must be present in a decoded result for
// the given calctype. Unknown (calctype, field) pairs are optional.
func Mandatory(ct CalcType, f Field) bool {
	for _, s := range calcFields[ct] {
		if s.field == f {
			return s.mandatory
		}
	}
	return false
}

// KnownCalcType reports whether ct names a supported calculation category.
func KnownCalcType(ct CalcType) bool {
	_, ok := calcFields[ct]
	return ok
}
