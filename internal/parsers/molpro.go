// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parsers

import (
	"strconv"
	"strings"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/pkg/types"
)

// Molpro writes everything of interest to stdout; there are no auxiliary
// files to collect. Energies and coordinates are already in atomic units.

const molproEnergyToken = "energy="

// molproEnergy scans stdout for the first line carrying an "energy="
// token and parses the value, which is either attached to the token or
// the next whitespace-separated field on the line.
func molproEnergy(a artifact.RawArtifact) (any, error) {
	for _, line := range strings.Split(a.Text, "\n") {
		if !strings.Contains(line, molproEnergyToken) {
			continue
		}
		fields := splitLine(line)
		for i, f := range fields {
			idx := strings.Index(f, molproEnergyToken)
			if idx < 0 {
				continue
			}
			lit := f[idx+len(molproEnergyToken):]
			if lit == "" {
				if i+1 >= len(fields) {
					return nil, &MalformedError{Reason: "energy= token with no value"}
				}
				lit = fields[i+1]
			}
			return parseFloat(lit)
		}
	}
	return nil, &NoMatchError{Pattern: molproEnergyToken}
}

const molproGradientMarker = "GRADIENT FOR STATE"

// molproGradient parses the first gradient table from stdout. The table
// follows a "GRADIENT FOR STATE" marker: a blank line, a column header,
// then one row per atom with the atom index and three derivatives in
// Hartree/Bohr.
func molproGradient(a artifact.RawArtifact) (any, error) {
	lines := strings.Split(a.Text, "\n")
	start := -1
	for i, line := range lines {
		if strings.Contains(line, molproGradientMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, &NoMatchError{Pattern: molproGradientMarker}
	}

	var grad []float64
	seenRows := false
	for _, line := range lines[start+1:] {
		fields := splitLine(line)
		if len(fields) == 0 {
			if seenRows {
				break
			}
			continue
		}
		// Skip the ATOM/GX/GY/GZ header.
		if _, err := strconv.Atoi(fields[0]); err != nil {
			if seenRows {
				break
			}
			continue
		}
		if len(fields) != 4 {
			return nil, &MalformedError{Reason: "gradient row width mismatch"}
		}
		for _, f := range fields[1:] {
			v, err := parseFloat(f)
			if err != nil {
				return nil, err
			}
			grad = append(grad, v)
		}
		seenRows = true
	}
	if !seenRows {
		return nil, &MalformedError{Reason: "gradient table has no rows"}
	}
	return grad, nil
}

const molproCoordMarker = "ATOMIC COORDINATES"

// molproStructure parses the first atomic-coordinates table from stdout.
// Rows carry NR, element symbol, nuclear charge, and x/y/z in Bohr.
func molproStructure(a artifact.RawArtifact) (any, error) {
	lines := strings.Split(a.Text, "\n")
	start := -1
	for i, line := range lines {
		if strings.Contains(line, molproCoordMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, &NoMatchError{Pattern: molproCoordMarker}
	}

	s := &types.Structure{}
	seenRows := false
	for _, line := range lines[start+1:] {
		fields := splitLine(line)
		if len(fields) == 0 {
			if seenRows {
				break
			}
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			if seenRows {
				break
			}
			continue
		}
		if len(fields) != 6 {
			return nil, &MalformedError{Reason: "coordinate row width mismatch"}
		}
		s.Symbols = append(s.Symbols, fields[1])
		for _, f := range fields[3:] {
			v, err := parseFloat(f)
			if err != nil {
				return nil, err
			}
			s.Geometry = append(s.Geometry, v)
		}
		seenRows = true
	}
	if !seenRows {
		return nil, &MalformedError{Reason: "coordinate table has no rows"}
	}
	return s, nil
}
