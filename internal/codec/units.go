// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import "github.com/pdiddy/qcdecode/pkg/types"

// unitProfile holds the factors that take one program's native output
// units to atomic units. Conversion happens exactly once, at assembly,
// from this fixed table; it is never inferred from surrounding text.
type unitProfile struct {
	energyToHartree  float64
	gradientToAtomic float64
	hessianToAtomic  float64
	coordsToBohr     float64
}

// unitProfiles documents each program's native units:
//
//	orca    Hartree, Hartree/Bohr, Bohr          (atomic throughout)
//	molpro  Hartree, Hartree/Bohr, Bohr          (atomic throughout)
//	mopac   kcal/mol, kcal/mol/Angstrom, Angstrom
var unitProfiles = map[types.Program]unitProfile{
	types.ProgramOrca:   {1, 1, 1, 1},
	types.ProgramMolpro: {1, 1, 1, 1},
	types.ProgramMopac: {
		energyToHartree:  types.KcalPerMolToHartree,
		gradientToAtomic: types.KcalPerMolToHartree * types.BohrToAngstrom,
		hessianToAtomic:  types.KcalPerMolToHartree * types.BohrToAngstrom * types.BohrToAngstrom,
		coordsToBohr:     types.AngstromToBohr,
	},
}
