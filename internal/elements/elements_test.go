package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOrderedAndUnique(t *testing.T) {
	all := All()
	require.Len(t, all, 118)

	cells := map[[2]int]string{}
	for i, e := range all {
		assert.Equal(t, i+1, e.Z)
		assert.Less(t, e.Row, GridRows)
		assert.Less(t, e.Col, GridCols)
		key := [2]int{e.Row, e.Col}
		_, dup := cells[key]
		assert.False(t, dup, "cell %v used twice", key)
		cells[key] = e.Symbol
	}
}

func TestLookup(t *testing.T) {
	fe, ok := Lookup("Fe")
	require.True(t, ok)
	assert.Equal(t, Element{Z: 26, Symbol: "Fe", Name: "Iron", Row: 3, Col: 7}, fe)

	u, ok := Lookup("U")
	require.True(t, ok)
	assert.Equal(t, 8, u.Row)

	_, ok = Lookup("fe")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Symbol = "X"
	assert.Equal(t, "H", All()[0].Symbol)
}
