package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	require.Equal(t, Key("{} {}"), Key("{} {}"))
	require.NotEqual(t, Key("{} {}"), Key("{}  {}"))
	require.NotEqual(t, Key(""), Key(" "))
}
