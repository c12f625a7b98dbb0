package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-scripts/util"
)

func TestMakeDirectoryAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.False(t, util.FileExists(dir))

	require.NoError(t, util.MakeDirectory(dir))
	require.True(t, util.FileExists(dir))

	// creating it again is not an error
	require.NoError(t, util.MakeDirectory(dir))
}

func TestCleanAndExpandPath(t *testing.T) {
	require.Equal(t, "", util.CleanAndExpandPath(""))
	require.Equal(t, "/a/c", util.CleanAndExpandPath("/a/b/../c/"))

	t.Setenv("STKSCRIPT_TEST_DIR", "/tmp/stk")
	require.Equal(t, "/tmp/stk/conf", util.CleanAndExpandPath("$STKSCRIPT_TEST_DIR/conf"))
	require.NotContains(t, util.CleanAndExpandPath("~/x"), "~")
}
