// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parsers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/pkg/types"
)

func stdoutArtifact(text string) artifact.RawArtifact {
	return artifact.RawArtifact{Filetype: artifact.FiletypeStdout, Text: text}
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOrcaStdoutEnergy(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{
			name:    "value with surrounding text",
			content: "some header\nFINAL ENERGY: -76.404459\ntrailing text\n",
			want:    -76.404459,
		},
		{
			name:    "first occurrence wins",
			content: "FINAL ENERGY: -1.0\nnoise\nFINAL ENERGY: -2.0\n",
			want:    -1.0,
		},
		{
			name:    "integer energy",
			content: "FINAL ENERGY: -76\n",
			want:    -76,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orcaStdoutEnergy(stdoutArtifact(tt.content))
			if err != nil {
				t.Fatalf("orcaStdoutEnergy: %v", err)
			}
			if got.(float64) != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrcaStdoutEnergyAbsent(t *testing.T) {
	_, err := orcaStdoutEnergy(stdoutArtifact("no energy here"))
	var nm *NoMatchError
	if !errors.As(err, &nm) {
		t.Fatalf("err = %v, want *NoMatchError", err)
	}
}

const engradFixture = `#
# Number of atoms
#
 3
#
# The current total energy in Eh
#
    -76.404459
#
# The current gradient in Eh/bohr
#
       0.1
      -0.2
       0.3
       0.0
       0.25
      -0.5
       0.75
       1.0
      -1.25
#
# The atomic numbers and current coordinates in Bohr
#
  8   0.0   0.0  -0.25
  1   0.0   1.5   1.0
  1   0.0  -1.5   1.0
`

func TestReadEngrad(t *testing.T) {
	path := writeFixture(t, "water.engrad", engradFixture)

	e, err := readEngrad(path)
	if err != nil {
		t.Fatalf("readEngrad: %v", err)
	}
	if e.natoms != 3 {
		t.Errorf("natoms = %d, want 3", e.natoms)
	}
	if e.energy != -76.404459 {
		t.Errorf("energy = %v, want -76.404459", e.energy)
	}
	if len(e.gradient) != 9 {
		t.Fatalf("gradient length = %d, want 9", len(e.gradient))
	}
	if e.gradient[0] != 0.1 || e.gradient[8] != -1.25 {
		t.Errorf("gradient = %v", e.gradient)
	}

	want := []string{"O", "H", "H"}
	for i, sym := range want {
		if e.structure.Symbols[i] != sym {
			t.Errorf("symbol[%d] = %q, want %q", i, e.structure.Symbols[i], sym)
		}
	}
	if e.structure.Geometry[2] != -0.25 {
		t.Errorf("geometry[2] = %v, want -0.25", e.structure.Geometry[2])
	}
}

func TestReadEngradTruncatedIsMalformed(t *testing.T) {
	path := writeFixture(t, "bad.engrad", " 3\n -76.4\n 0.1 0.2\n")

	_, err := readEngrad(path)
	var mal *MalformedError
	if !errors.As(err, &mal) {
		t.Fatalf("err = %v, want *MalformedError", err)
	}
}

func TestOrcaEngradRoutines(t *testing.T) {
	path := writeFixture(t, "water.engrad", engradFixture)
	a := artifact.RawArtifact{Filetype: FiletypeOrcaEngrad, Path: path}

	v, err := orcaEngradEnergy(a)
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != -76.404459 {
		t.Errorf("energy = %v", v)
	}

	g, err := orcaEngradGradient(a)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.([]float64)) != 9 {
		t.Errorf("gradient length = %d", len(g.([]float64)))
	}

	s, err := orcaEngradStructure(a)
	if err != nil {
		t.Fatal(err)
	}
	if s.(*types.Structure).NumAtoms() != 3 {
		t.Errorf("atoms = %d", s.(*types.Structure).NumAtoms())
	}
}

const hessFixture = `$orca_hessian_file

$hessian
3
          0         1         2
    0   0.10  0.20  0.30
    1   0.20  0.50  0.60
    2   0.30  0.60  0.90
$end
`

func TestOrcaHessian(t *testing.T) {
	path := writeFixture(t, "water.hess", hessFixture)
	a := artifact.RawArtifact{Filetype: FiletypeOrcaHess, Path: path}

	v, err := orcaHessian(a)
	if err != nil {
		t.Fatalf("orcaHessian: %v", err)
	}
	h := v.([]float64)
	if len(h) != 9 {
		t.Fatalf("hessian length = %d, want 9", len(h))
	}
	if h[0] != 0.1 || h[4] != 0.5 || h[8] != 0.9 {
		t.Errorf("diagonal = %v %v %v", h[0], h[4], h[8])
	}
	// Symmetric off-diagonal entries.
	if h[1] != h[3] || h[2] != h[6] {
		t.Errorf("hessian = %v", h)
	}
}

func TestOrcaHessianBlocked(t *testing.T) {
	// Two column blocks, as Orca prints for wide matrices.
	content := `$hessian
3
          0         1
    0   0.10  0.20
    1   0.20  0.50
    2   0.30  0.60
          2
    0   0.30
    1   0.60
    2   0.90
`
	path := writeFixture(t, "blocked.hess", content)
	v, err := orcaHessian(artifact.RawArtifact{Filetype: FiletypeOrcaHess, Path: path})
	if err != nil {
		t.Fatalf("orcaHessian: %v", err)
	}
	h := v.([]float64)
	if h[2] != 0.3 || h[5] != 0.6 || h[8] != 0.9 {
		t.Errorf("last column = %v %v %v", h[2], h[5], h[8])
	}
}

func TestOrcaHessianSectionAbsent(t *testing.T) {
	path := writeFixture(t, "empty.hess", "$orca_hessian_file\n$end\n")
	_, err := orcaHessian(artifact.RawArtifact{Filetype: FiletypeOrcaHess, Path: path})
	var nm *NoMatchError
	if !errors.As(err, &nm) {
		t.Fatalf("err = %v, want *NoMatchError", err)
	}
}

func TestOrcaCollect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"water.engrad", "water.hess", "water.gbw", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	arts, err := orcaCollect(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(arts) != 2 {
		t.Fatalf("collected %d artifacts, want 2 (unrecognized files ignored)", len(arts))
	}
	kinds := map[artifact.Filetype]bool{}
	for _, a := range arts {
		kinds[a.Filetype] = true
	}
	if !kinds[FiletypeOrcaEngrad] || !kinds[FiletypeOrcaHess] {
		t.Errorf("collected kinds = %v", kinds)
	}
}
