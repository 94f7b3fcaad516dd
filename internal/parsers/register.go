// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parsers

import (
	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/internal/registry"
	"github.com/pdiddy/qcdecode/pkg/types"
)

// Preference ranks. Structured auxiliary files are authoritative when both
// they and stdout carry a value; console text is pattern-brittle.
const (
	prefStdout = 0
	prefAux    = 10
)

// derivCalcTypes covers the calctypes whose output carries an energy.
var derivCalcTypes = []types.CalcType{
	types.CalcTypeEnergy,
	types.CalcTypeGradient,
	types.CalcTypeHessian,
	types.CalcTypeOptimization,
}

// RegisterAll installs every extraction routine and collector into reg.
// Call it exactly once, before the registry serves any request; the table
// is read-only afterwards.
func RegisterAll(reg *registry.Registry) error {
	if err := reg.RegisterCollector(types.ProgramOrca, orcaCollect); err != nil {
		return err
	}
	if err := reg.RegisterCollector(types.ProgramMopac, mopacCollect); err != nil {
		return err
	}

	regs := []registry.Registration{
		// Orca.
		{
			Program:    types.ProgramOrca,
			Filetype:   artifact.FiletypeStdout,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldEnergy,
			Parse:      orcaStdoutEnergy,
			Preference: prefStdout,
		},
		{
			Program:    types.ProgramOrca,
			Filetype:   FiletypeOrcaEngrad,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldEnergy,
			Parse:      orcaEngradEnergy,
			Preference: prefAux,
		},
		{
			Program:    types.ProgramOrca,
			Filetype:   FiletypeOrcaEngrad,
			CalcTypes:  []types.CalcType{types.CalcTypeGradient, types.CalcTypeHessian, types.CalcTypeOptimization},
			Field:      types.FieldGradient,
			Parse:      orcaEngradGradient,
			Preference: prefAux,
		},
		{
			Program:    types.ProgramOrca,
			Filetype:   FiletypeOrcaEngrad,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldStructure,
			Parse:      orcaEngradStructure,
			Preference: prefAux,
		},
		{
			Program:    types.ProgramOrca,
			Filetype:   FiletypeOrcaHess,
			CalcTypes:  []types.CalcType{types.CalcTypeHessian},
			Field:      types.FieldHessian,
			Parse:      orcaHessian,
			Preference: prefAux,
		},

		// Molpro.
		{
			Program:    types.ProgramMolpro,
			Filetype:   artifact.FiletypeStdout,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldEnergy,
			Parse:      molproEnergy,
			Preference: prefStdout,
		},
		{
			Program:    types.ProgramMolpro,
			Filetype:   artifact.FiletypeStdout,
			CalcTypes:  []types.CalcType{types.CalcTypeGradient, types.CalcTypeHessian, types.CalcTypeOptimization},
			Field:      types.FieldGradient,
			Parse:      molproGradient,
			Preference: prefStdout,
		},
		{
			Program:    types.ProgramMolpro,
			Filetype:   artifact.FiletypeStdout,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldStructure,
			Parse:      molproStructure,
			Preference: prefStdout,
		},

		// Mopac.
		{
			Program:    types.ProgramMopac,
			Filetype:   artifact.FiletypeStdout,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldEnergy,
			Parse:      mopacStdoutEnergy,
			Preference: prefStdout,
		},
		{
			Program:    types.ProgramMopac,
			Filetype:   FiletypeMopacAux,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldEnergy,
			Parse:      mopacAuxEnergy,
			Preference: prefAux,
		},
		{
			Program:    types.ProgramMopac,
			Filetype:   FiletypeMopacAux,
			CalcTypes:  []types.CalcType{types.CalcTypeGradient, types.CalcTypeHessian, types.CalcTypeOptimization},
			Field:      types.FieldGradient,
			Parse:      mopacAuxGradient,
			Preference: prefAux,
		},
		{
			Program:    types.ProgramMopac,
			Filetype:   FiletypeMopacAux,
			CalcTypes:  derivCalcTypes,
			Field:      types.FieldStructure,
			Parse:      mopacAuxStructure,
			Preference: prefAux,
		},
	}

	for _, r := range regs {
		if err := reg.Register(r); err != nil {
			return err
		}
	}
	return nil
}
