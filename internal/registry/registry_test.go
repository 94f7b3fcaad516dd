// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/qcdecode/internal/artifact"
	"github.com/pdiddy/qcdecode/pkg/types"
)

func stubParse(a artifact.RawArtifact) (any, error) {
	return 1.0, nil
}

func reg(ft artifact.Filetype, pref int) Registration {
	return Registration{
		Program:    types.ProgramOrca,
		Filetype:   ft,
		CalcTypes:  []types.CalcType{types.CalcTypeEnergy},
		Field:      types.FieldEnergy,
		Parse:      stubParse,
		Preference: pref,
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(reg(artifact.FiletypeStdout, 5)))

	err := r.Register(reg(artifact.FiletypeStdout, 7))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, types.ProgramOrca, cfgErr.Program)
	assert.Equal(t, artifact.FiletypeStdout, cfgErr.Filetype)
	assert.Equal(t, types.FieldEnergy, cfgErr.Field)

	// The original registration is unmodified.
	got := r.Lookup(types.ProgramOrca, types.CalcTypeEnergy, types.FieldEnergy)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Preference)
}

func TestLookupOrdersByDescendingPreference(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(reg(artifact.FiletypeStdout, 0)))
	require.NoError(t, r.Register(reg("orca-engrad", 10)))

	got := r.Lookup(types.ProgramOrca, types.CalcTypeEnergy, types.FieldEnergy)
	require.Len(t, got, 2)
	assert.Equal(t, artifact.Filetype("orca-engrad"), got[0].Filetype)
	assert.Equal(t, artifact.FiletypeStdout, got[1].Filetype)
}

func TestLookupFiltersByCalcType(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(reg(artifact.FiletypeStdout, 0)))

	got := r.Lookup(types.ProgramOrca, types.CalcTypeHessian, types.FieldEnergy)
	assert.Empty(t, got)
}

func TestLookupFiltersByProgramAndField(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(reg(artifact.FiletypeStdout, 0)))

	assert.Empty(t, r.Lookup(types.ProgramMopac, types.CalcTypeEnergy, types.FieldEnergy))
	assert.Empty(t, r.Lookup(types.ProgramOrca, types.CalcTypeEnergy, types.FieldGradient))
}

func TestRegisterCollectorDuplicateFails(t *testing.T) {
	r := New()
	collect := func(dir string) ([]artifact.RawArtifact, error) { return nil, nil }

	require.NoError(t, r.RegisterCollector(types.ProgramOrca, collect))
	err := r.RegisterCollector(types.ProgramOrca, collect)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
}

func TestCollectorNilForUnknownProgram(t *testing.T) {
	r := New()
	assert.Nil(t, r.Collector(types.ProgramMolpro))
}
