// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parsers

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/pkg/types"
)

// Orca auxiliary filetypes. The engrad file carries the energy and the
// gradient in atomic units; the hess file carries the hessian. Both are
// authoritative over the stdout text when present.
const (
	FiletypeOrcaEngrad artifact.Filetype = "orca-engrad"
	FiletypeOrcaHess   artifact.Filetype = "orca-hess"
)

// orcaCollect enumerates the Orca auxiliary files in an output directory.
// Unrecognized files are ignored so new Orca output does not break older
// decoders.
func orcaCollect(dir string) ([]artifact.RawArtifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &artifact.InputError{Path: dir, Reason: err.Error()}
	}
	var out []artifact.RawArtifact
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch {
		case strings.HasSuffix(e.Name(), ".engrad"):
			out = append(out, artifact.RawArtifact{
				Filetype: FiletypeOrcaEngrad,
				Path:     filepath.Join(dir, e.Name()),
			})
		case strings.HasSuffix(e.Name(), ".hess"):
			out = append(out, artifact.RawArtifact{
				Filetype: FiletypeOrcaHess,
				Path:     filepath.Join(dir, e.Name()),
			})
		}
	}
	return out, nil
}

var orcaEnergyRe = regexp.MustCompile(`FINAL ENERGY: (-?\d+(?:\.\d+)?)`)

// orcaStdoutEnergy parses the final energy from Orca stdout. Frequency
// output contains many energy values; the first occurrence wins.
func orcaStdoutEnergy(a artifact.RawArtifact) (any, error) {
	m, err := searchFirst(orcaEnergyRe, a.Text)
	if err != nil {
		return nil, err
	}
	return parseFloat(m[1])
}

// engrad holds the decoded contents of an Orca .engrad file.
type engrad struct {
	natoms    int
	energy    float64
	gradient  []float64
	structure *types.Structure
}

// readEngrad decodes an .engrad file: comment lines start with '#'; the
// data tokens are natoms, the total energy in Hartree, 3N gradient
// components in Hartree/Bohr, then one line per atom with atomic number
// and coordinates in Bohr.
func readEngrad(path string) (*engrad, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedError{Reason: "reading " + path, Err: err}
	}

	var tokens []string
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens = append(tokens, splitLine(trimmed)...)
	}
	if len(tokens) < 2 {
		return nil, &MalformedError{Reason: "engrad file truncated"}
	}

	natoms, err := strconv.Atoi(tokens[0])
	if err != nil || natoms <= 0 {
		return nil, &MalformedError{Reason: "bad atom count " + tokens[0], Err: err}
	}
	energy, err := parseFloat(tokens[1])
	if err != nil {
		return nil, err
	}

	rest := tokens[2:]
	if len(rest) != 3*natoms+4*natoms {
		return nil, &MalformedError{
			Reason: "engrad token count does not match atom count",
		}
	}

	grad := make([]float64, 3*natoms)
	for i := range grad {
		grad[i], err = parseFloat(rest[i])
		if err != nil {
			return nil, err
		}
	}

	s := &types.Structure{
		Symbols:  make([]string, 0, natoms),
		Geometry: make([]float64, 0, 3*natoms),
	}
	atomTokens := rest[3*natoms:]
	for i := 0; i < natoms; i++ {
		z, err := strconv.Atoi(atomTokens[4*i])
		if err != nil {
			return nil, &MalformedError{Reason: "bad atomic number " + atomTokens[4*i], Err: err}
		}
		sym := types.SymbolForNumber(z)
		if sym == "" {
			return nil, &MalformedError{Reason: "unknown atomic number " + atomTokens[4*i]}
		}
		s.Symbols = append(s.Symbols, sym)
		for j := 1; j <= 3; j++ {
			c, err := parseFloat(atomTokens[4*i+j])
			if err != nil {
				return nil, err
			}
			s.Geometry = append(s.Geometry, c)
		}
	}

	return &engrad{natoms: natoms, energy: energy, gradient: grad, structure: s}, nil
}

func orcaEngradEnergy(a artifact.RawArtifact) (any, error) {
	e, err := readEngrad(a.Path)
	if err != nil {
		return nil, err
	}
	return e.energy, nil
}

func orcaEngradGradient(a artifact.RawArtifact) (any, error) {
	e, err := readEngrad(a.Path)
	if err != nil {
		return nil, err
	}
	return e.gradient, nil
}

func orcaEngradStructure(a artifact.RawArtifact) (any, error) {
	e, err := readEngrad(a.Path)
	if err != nil {
		return nil, err
	}
	return e.structure, nil
}

// orcaHessian parses the $hessian section of an Orca .hess file. The
// section starts with the matrix dimension, then prints the matrix in
// column blocks: a header line of column indices followed by one line per
// row holding the row index and the block's values.
func orcaHessian(a artifact.RawArtifact) (any, error) {
	raw, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, &MalformedError{Reason: "reading " + a.Path, Err: err}
	}

	lines := strings.Split(string(raw), "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "$hessian" {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, &NoMatchError{Pattern: "$hessian"}
	}

	// Dimension is the first non-empty line after the marker.
	i := start + 1
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) {
		return nil, &MalformedError{Reason: "hessian section truncated"}
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[i]))
	if err != nil || n <= 0 {
		return nil, &MalformedError{Reason: "bad hessian dimension", Err: err}
	}
	i++

	h := make([]float64, n*n)
	filled := 0
	for filled < n*n && i < len(lines) {
		// Column header: all-integer line naming the block's columns.
		header := splitLine(lines[i])
		if len(header) == 0 {
			i++
			continue
		}
		cols := make([]int, 0, len(header))
		for _, tok := range header {
			c, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &MalformedError{Reason: "bad hessian column header " + tok, Err: err}
			}
			cols = append(cols, c)
		}
		i++
		for row := 0; row < n; row++ {
			if i >= len(lines) {
				return nil, &MalformedError{Reason: "hessian block truncated"}
			}
			fields := splitLine(lines[i])
			if len(fields) != len(cols)+1 {
				return nil, &MalformedError{Reason: "hessian row width mismatch"}
			}
			r, err := strconv.Atoi(fields[0])
			if err != nil || r != row {
				return nil, &MalformedError{Reason: "bad hessian row index " + fields[0], Err: err}
			}
			for j, c := range cols {
				if c < 0 || c >= n {
					return nil, &MalformedError{Reason: "hessian column out of range"}
				}
				v, err := parseFloat(fields[j+1])
				if err != nil {
					return nil, err
				}
				h[row*n+c] = v
				filled++
			}
			i++
		}
	}
	if filled != n*n {
		return nil, &MalformedError{Reason: "hessian matrix incomplete"}
	}
	return h, nil
}
