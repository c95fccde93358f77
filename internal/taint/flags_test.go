package taint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagTableShape(t *testing.T) {
	require.Len(t, Flags, 18)

	seen := make(map[uint]bool)
	prev := -1
	for _, def := range Flags {
		assert.False(t, seen[def.Shift], "duplicate shift %d", def.Shift)
		seen[def.Shift] = true
		assert.Greater(t, int(def.Shift), prev, "shifts must increase in table order")
		prev = int(def.Shift)

		assert.NotEmpty(t, def.SetDescription, "flag %c needs a set description", def.SetChar)
		assert.LessOrEqual(t, def.Shift, uint(63))
	}
}

func TestFlagTableUnsetDescriptions(t *testing.T) {
	var withUnset []FlagDef
	for _, def := range Flags {
		if def.UnsetDescription != "" {
			withUnset = append(withUnset, def)
		}
	}
	require.Len(t, withUnset, 1)
	assert.Equal(t, uint(0), withUnset[0].Shift)
	assert.Equal(t, byte('G'), withUnset[0].UnsetChar)
	assert.Equal(t, byte('P'), withUnset[0].SetChar)
}

func TestFlagValue(t *testing.T) {
	assert.Equal(t, uint64(1), Flags[0].Value())
	assert.Equal(t, uint64(16), Flags[4].Value())
	assert.Equal(t, uint64(1<<17), Flags[17].Value())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARN", SeverityWarn.String())
	assert.Equal(t, "ALERT", SeverityAlert.String())
}
