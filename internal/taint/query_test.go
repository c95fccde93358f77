package taint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryCaseAndDuplicates(t *testing.T) {
	for _, query := range []string{"P", "p", "pp", "Pp"} {
		value, warnings := ParseQuery(query)
		assert.Equal(t, uint64(1), value, "query %q", query)
		assert.Empty(t, warnings, "query %q", query)
	}
}

func TestParseQueryMultipleFlags(t *testing.T) {
	value, warnings := ParseQuery("pmeol")
	assert.Equal(t, uint64(28689), value)
	assert.Empty(t, warnings)

	// bits 0, 4, 12, 13, 14
	for _, bit := range []uint{0, 4, 12, 13, 14} {
		assert.NotZero(t, value&(uint64(1)<<bit), "bit %d should be set", bit)
	}
}

func TestParseQueryUnknownFlag(t *testing.T) {
	value, warnings := ParseQuery("Z")
	assert.Zero(t, value)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningUnknownFlag, warnings[0].Kind)
	assert.Equal(t, byte('Z'), warnings[0].Char)
}

func TestParseQueryUnknownFlagUppercased(t *testing.T) {
	value, warnings := ParseQuery("pz")
	assert.Equal(t, uint64(1), value)
	require.Len(t, warnings, 1)
	assert.Equal(t, byte('Z'), warnings[0].Char, "warning reports the uppercased character")
}

func TestParseQueryUnsetCharAlone(t *testing.T) {
	value, warnings := ParseQuery("G")
	assert.Zero(t, value)
	assert.Empty(t, warnings)
}

func TestParseQueryConflict(t *testing.T) {
	for _, query := range []string{"Gp", "gP", "pG"} {
		value, warnings := ParseQuery(query)
		assert.Equal(t, uint64(1), value, "set flag wins for query %q", query)
		require.Len(t, warnings, 1, "query %q", query)
		assert.Equal(t, WarningConflictingFlags, warnings[0].Kind)
		assert.Equal(t, byte('P'), warnings[0].SetChar)
		assert.Equal(t, byte('G'), warnings[0].UnsetChar)
	}
}

func TestParseQueryEmpty(t *testing.T) {
	value, warnings := ParseQuery("")
	assert.Zero(t, value)
	assert.Empty(t, warnings)
}
