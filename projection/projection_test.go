package projection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSortsAndDedups(t *testing.T) {
	u := New(3, 1, 1, 2)
	require.Equal(t, "{1,2,3}", u.String())
	require.Equal(t, 3, u.Card())
}

func TestWithWithout(t *testing.T) {
	u := New(1, 3)
	require.Equal(t, "{1,2,3}", u.With(2).String())
	require.Equal(t, "{3}", u.Without(1).String())
	require.Equal(t, u.String(), u.With(1).String(), "With on an already-present coordinate must be a no-op")
}

func TestParseOneBased(t *testing.T) {
	u, err := Parse("1,3, 4")
	require.NoError(t, err)
	require.Equal(t, "{0,2,3}", u.String())

	_, err = Parse("")
	require.Error(t, err)

	_, err = Parse("0")
	require.Error(t, err, "coordinates are 1-based on input")
}

func TestMaxOfEmptyIsMinusOne(t *testing.T) {
	require.Equal(t, -1, New().Max())
}
