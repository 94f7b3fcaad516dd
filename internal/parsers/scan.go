// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parsers implements the per-program extraction routines and the
// startup registration of all of them.
// Implements: prd003-parsers; docs/ARCHITECTURE § Parsers.
package parsers

import (
	"regexp"
	"strconv"
	"strings"
)

// searchFirst returns the submatch groups of the first occurrence of re in
// content. Repeated occurrences are intentional no-ops: the first match is
// the contract, so frequency runs with per-iteration values stay
// deterministic. Absence yields a NoMatchError.
func searchFirst(re *regexp.Regexp, content string) ([]string, error) {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return nil, &NoMatchError{Pattern: re.String()}
	}
	return m, nil
}

// parseFloat parses a decimal literal, wrapping failures as malformed
// content. No unit conversion happens here.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &MalformedError{Reason: "not a number: " + s, Err: err}
	}
	return v, nil
}

// parseFortranFloat parses a float that may use Fortran D-exponent
// notation (e.g. "-0.57798D+02").
func parseFortranFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "D", "E"), "d", "e")
	return parseFloat(s)
}

// splitLine splits a line on runs of whitespace, dropping empties.
func splitLine(line string) []string {
	return strings.Fields(line)
}
