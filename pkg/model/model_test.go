package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	for _, name := range []string{"hot", "new", "top", "controversial", "rising"} {
		order, err := ParseOrder(name)
		require.NoError(t, err)
		assert.EqualValues(t, name, order)
	}
}

func TestParseOrder_Unknown(t *testing.T) {
	_, err := ParseOrder("best")
	require.Error(t, err)

	// Orders are matched verbatim, no case folding
	_, err = ParseOrder("Hot")
	require.Error(t, err)

	_, err = ParseOrder("")
	require.Error(t, err)
}
