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

// FiletypeMopacAux is Mopac's machine-readable auxiliary file. It reports
// energies in kcal/mol, gradients in kcal/mol/Angstrom, and coordinates in
// Angstrom; the assembler converts them to atomic units.
const FiletypeMopacAux artifact.Filetype = "mopac-aux"

// mopacCollect enumerates the .aux files in a Mopac output directory,
// ignoring everything else.
func mopacCollect(dir string) ([]artifact.RawArtifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &artifact.InputError{Path: dir, Reason: err.Error()}
	}
	var out []artifact.RawArtifact
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".aux") {
			continue
		}
		out = append(out, artifact.RawArtifact{
			Filetype: FiletypeMopacAux,
			Path:     filepath.Join(dir, e.Name()),
		})
	}
	return out, nil
}

var mopacStdoutEnergyRe = regexp.MustCompile(`FINAL HEAT OF FORMATION\s*=\s*(-?\d+(?:\.\d+)?)`)

// mopacStdoutEnergy parses the final heat of formation (kcal/mol) from
// Mopac stdout.
func mopacStdoutEnergy(a artifact.RawArtifact) (any, error) {
	m, err := searchFirst(mopacStdoutEnergyRe, a.Text)
	if err != nil {
		return nil, err
	}
	return parseFloat(m[1])
}

var mopacAuxEnergyRe = regexp.MustCompile(`HEAT_OF_FORMATION:KCAL/MOL=\s*(\S+)`)

func mopacAuxEnergy(a artifact.RawArtifact) (any, error) {
	content, err := readAux(a.Path)
	if err != nil {
		return nil, err
	}
	m, err := searchFirst(mopacAuxEnergyRe, content)
	if err != nil {
		return nil, err
	}
	return parseFortranFloat(m[1])
}

func mopacAuxGradient(a artifact.RawArtifact) (any, error) {
	content, err := readAux(a.Path)
	if err != nil {
		return nil, err
	}
	count, tokens, err := auxBlock(content, "GRADIENTS:KCAL/MOL/ANGSTROM")
	if err != nil {
		return nil, err
	}
	grad := make([]float64, 0, count)
	for _, tok := range tokens[:count] {
		v, err := parseFortranFloat(tok)
		if err != nil {
			return nil, err
		}
		grad = append(grad, v)
	}
	return grad, nil
}

func mopacAuxStructure(a artifact.RawArtifact) (any, error) {
	content, err := readAux(a.Path)
	if err != nil {
		return nil, err
	}
	natoms, symTokens, err := auxBlock(content, "ATOM_EL")
	if err != nil {
		return nil, err
	}
	ncoords, coordTokens, err := auxBlock(content, "ATOM_X:ANGSTROMS")
	if err != nil {
		return nil, err
	}
	if ncoords != natoms {
		return nil, &MalformedError{Reason: "ATOM_X atom count disagrees with ATOM_EL"}
	}
	if len(coordTokens) < 3*natoms {
		return nil, &MalformedError{Reason: "coordinate block truncated"}
	}

	s := &types.Structure{
		Symbols:  make([]string, natoms),
		Geometry: make([]float64, 0, 3*natoms),
	}
	copy(s.Symbols, symTokens[:natoms])
	for _, tok := range coordTokens[:3*natoms] {
		v, err := parseFortranFloat(tok)
		if err != nil {
			return nil, err
		}
		s.Geometry = append(s.Geometry, v)
	}
	return s, nil
}

// readAux loads an aux file, reporting a missing or unreadable file as
// malformed content so the dispatcher can fall back to stdout.
func readAux(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &MalformedError{Reason: "reading " + path, Err: err}
	}
	return string(raw), nil
}

// auxBlock locates the first `KEY[n]=` entry in aux content and returns n
// plus the value tokens that follow it, stopping at the next keyword. Aux
// keywords are upper-case assignments, so any token containing '=' ends
// the block.
func auxBlock(content, key string) (int, []string, error) {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `\[\s*(\d+)\]=`)
	loc := re.FindStringSubmatchIndex(content)
	if loc == nil {
		return 0, nil, &NoMatchError{Pattern: key}
	}
	n, err := strconv.Atoi(content[loc[2]:loc[3]])
	if err != nil || n <= 0 {
		return 0, nil, &MalformedError{Reason: "bad count for " + key, Err: err}
	}

	var tokens []string
	for _, tok := range strings.Fields(content[loc[1]:]) {
		if strings.Contains(tok, "=") {
			break
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) < n {
		return 0, nil, &MalformedError{Reason: key + " block truncated"}
	}
	return n, tokens, nil
}
