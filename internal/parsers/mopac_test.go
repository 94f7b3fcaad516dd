// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parsers

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/pkg/types"
)

const auxFixture = ` START_OF_MOPAC_FILE
 ATOM_EL[0003]=
  O          H          H
 ATOM_X:ANGSTROMS[0003]=
     0.0000000000     0.0000000000     0.0000000000
     0.7570000000     0.0000000000     0.5860000000
    -0.7570000000     0.0000000000     0.5860000000
 GRADIENTS:KCAL/MOL/ANGSTROM[0009]=
  0.1000D+01  0.0000D+00 -0.2500D+00
  0.0000D+00  0.5000D+00  0.0000D+00
 -0.1000D+01  0.0000D+00  0.2500D+00
 HEAT_OF_FORMATION:KCAL/MOL=-0.57798520D+02
 END_OF_MOPAC_FILE
`

func auxArtifact(t *testing.T, content string) artifact.RawArtifact {
	t.Helper()
	path := filepath.Join(t.TempDir(), "water.aux")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return artifact.RawArtifact{Filetype: FiletypeMopacAux, Path: path}
}

func TestMopacAuxEnergy(t *testing.T) {
	v, err := mopacAuxEnergy(auxArtifact(t, auxFixture))
	if err != nil {
		t.Fatalf("mopacAuxEnergy: %v", err)
	}
	if got := v.(float64); math.Abs(got+57.79852) > 1e-9 {
		t.Errorf("energy = %v, want -57.79852", got)
	}
}

func TestMopacAuxGradient(t *testing.T) {
	v, err := mopacAuxGradient(auxArtifact(t, auxFixture))
	if err != nil {
		t.Fatalf("mopacAuxGradient: %v", err)
	}
	g := v.([]float64)
	if len(g) != 9 {
		t.Fatalf("gradient length = %d, want 9", len(g))
	}
	if g[0] != 1.0 || g[2] != -0.25 || g[6] != -1.0 {
		t.Errorf("gradient = %v", g)
	}
}

func TestMopacAuxStructure(t *testing.T) {
	v, err := mopacAuxStructure(auxArtifact(t, auxFixture))
	if err != nil {
		t.Fatalf("mopacAuxStructure: %v", err)
	}
	s := v.(*types.Structure)
	if s.NumAtoms() != 3 {
		t.Fatalf("atoms = %d, want 3", s.NumAtoms())
	}
	if s.Symbols[0] != "O" || s.Symbols[2] != "H" {
		t.Errorf("symbols = %v", s.Symbols)
	}
	// Literal Angstrom values; conversion to Bohr happens at assembly.
	if s.Geometry[3] != 0.757 {
		t.Errorf("geometry[3] = %v, want 0.757", s.Geometry[3])
	}
}

func TestMopacAuxKeyAbsent(t *testing.T) {
	_, err := mopacAuxEnergy(auxArtifact(t, "ATOM_EL[0001]=\n H\n"))
	var nm *NoMatchError
	if !errors.As(err, &nm) {
		t.Fatalf("err = %v, want *NoMatchError", err)
	}
}

func TestMopacAuxTruncatedBlockMalformed(t *testing.T) {
	content := " GRADIENTS:KCAL/MOL/ANGSTROM[0009]=\n 0.1D+01 0.2D+01\n HEAT_OF_FORMATION:KCAL/MOL=-0.5D+01\n"
	_, err := mopacAuxGradient(auxArtifact(t, content))
	var mal *MalformedError
	if !errors.As(err, &mal) {
		t.Fatalf("err = %v, want *MalformedError", err)
	}
}

func TestMopacAuxUnreadableIsMalformed(t *testing.T) {
	a := artifact.RawArtifact{Filetype: FiletypeMopacAux, Path: filepath.Join(t.TempDir(), "gone.aux")}
	_, err := mopacAuxEnergy(a)
	var mal *MalformedError
	if !errors.As(err, &mal) {
		t.Fatalf("err = %v, want *MalformedError", err)
	}
}

func TestMopacStdoutEnergy(t *testing.T) {
	content := `          FINAL HEAT OF FORMATION =        -57.79852 KCAL/MOL =    -241.82903 KJ/MOL`
	v, err := mopacStdoutEnergy(stdoutArtifact(content))
	if err != nil {
		t.Fatalf("mopacStdoutEnergy: %v", err)
	}
	if v.(float64) != -57.79852 {
		t.Errorf("energy = %v, want -57.79852", v)
	}
}

func TestMopacCollectIgnoresUnrecognized(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"water.aux", "water.out", "water.arc"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	arts, err := mopacCollect(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(arts) != 1 || arts[0].Filetype != FiletypeMopacAux {
		t.Errorf("collected = %+v, want one aux artifact", arts)
	}
}
