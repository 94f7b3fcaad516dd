// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Structure is a molecular geometry: element symbols plus cartesian
// coordinates in Bohr, flattened as [x0, y0, z0, x1, ...].
type Structure struct {
	// Symbols lists the element symbols in atom order (e.g. ["O", "H", "H"]).
	Symbols []string `json:"symbols" yaml:"symbols"`

	// Geometry holds 3N cartesian coordinates in Bohr.
	Geometry []float64 `json:"geometry" yaml:"geometry"`
}

// NumAtoms returns the atom count implied by the symbol list.
func (s *Structure) NumAtoms() int {
	return len(s.Symbols)
}

// symbolByNumber maps atomic numbers to element symbols for the elements
// the supported programs emit in practice.
var symbolByNumber = map[int]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O",
	9: "F", 10: "Ne", 11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar", 19: "K", 20: "Ca", 26: "Fe", 29: "Cu",
	30: "Zn", 35: "Br", 53: "I",
}

// SymbolForNumber returns the element symbol for an atomic number, or ""
// if the element is not in the table.
func SymbolForNumber(z int) string {
	return symbolByNumber[z]
}
