// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Physical constants (CODATA 2018) used by the fixed unit-conversion table.
// Program output is converted to atomic units exactly once, at assembly;
// extraction routines always report the literal printed value.
const (
	// BohrToAngstrom converts a length in Bohr to Angstrom.
	BohrToAngstrom = 0.529177210903

	// AngstromToBohr converts a length in Angstrom to Bohr.
	AngstromToBohr = 1.0 / BohrToAngstrom

	// HartreeToKcalPerMol converts an energy in Hartree to kcal/mol.
	HartreeToKcalPerMol = 627.509474063056

	// KcalPerMolToHartree converts an energy in kcal/mol to Hartree.
	KcalPerMolToHartree = 1.0 / HartreeToKcalPerMol
)
