package btcstaking_test

import (
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-scripts/btcstaking"
	"github.com/babylonchain/btc-staking-scripts/policy"
)

// The Babylon chain registers its own errors under "btcstaking" starting at
// code 1100, so the sentinels here must live in separate codespaces.
func TestErrorCodespaces(t *testing.T) {
	testCases := []struct {
		name      string
		err       *errorsmod.Error
		codespace string
		code      uint32
	}{
		{"invalid parameters", btcstaking.ErrInvalidScriptParameters, "stkscript", 1100},
		{"policy compilation", btcstaking.ErrPolicyCompilation, "stkscript", 1101},
		{"script assembly", btcstaking.ErrScriptAssembly, "stkscript", 1102},
		{"unsupported argument", policy.ErrUnsupportedArgumentType, "stkscript-policy", 1100},
		{"argument count", policy.ErrArgumentCountMismatch, "stkscript-policy", 1101},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.codespace, tc.err.Codespace())
			require.Equal(t, tc.code, tc.err.ABCICode())
			require.NotEqual(t, "btcstaking", tc.err.Codespace())
		})
	}
}
