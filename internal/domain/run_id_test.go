package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	for _, valid := range []string{"sim_20240101_120000", "backtest_a", "abc"} {
		id, err := NewRunID(valid)
		require.NoError(t, err, valid)
		require.Equal(t, valid, id.String())
	}

	for _, invalid := range []string{
		"",
		"ab",
		"1sim",
		"sim-1",
		"Sim_upper",
		"sim; drop table ticker",
		strings.Repeat("a", 41),
	} {
		_, err := NewRunID(invalid)
		require.True(t, errors.Is(err, ErrInvalidRunID), invalid)
	}
}

func TestGenerateRunID(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()
	require.NotEqual(t, a, b)

	parsed, err := NewRunID(a.String())
	require.NoError(t, err)
	require.Equal(t, a, parsed)
	require.Equal(t, a.String()+"_", a.SnapshotTablePrefix())
}
