package btcstaking_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-scripts/btcstaking"
	"github.com/babylonchain/btc-staking-scripts/testutil"
)

func validRawParams() btcstaking.RawStakingParameters {
	return btcstaking.RawStakingParameters{
		StakerKey:            bytes.Repeat([]byte{0x01}, 32),
		FinalityProviderKeys: [][]byte{bytes.Repeat([]byte{0x02}, 32)},
		CovenantKeys: [][]byte{
			bytes.Repeat([]byte{0x03}, 32),
			bytes.Repeat([]byte{0x04}, 32),
			bytes.Repeat([]byte{0x05}, 32),
		},
		CovenantThreshold: 2,
		StakingTimelock:   144,
		UnbondingTimelock: 101,
		MagicBytes:        []byte{0xAA, 0xBB, 0xCC, 0xDD},
	}
}

func TestNewStakingParametersRejectsInvalidFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(p *btcstaking.RawStakingParameters)
		field  string
	}{
		{
			name:   "31 byte staker key",
			mutate: func(p *btcstaking.RawStakingParameters) { p.StakerKey = p.StakerKey[:31] },
			field:  btcstaking.FieldStakerKey,
		},
		{
			name:   "33 byte staker key",
			mutate: func(p *btcstaking.RawStakingParameters) { p.StakerKey = append(p.StakerKey, 0x02) },
			field:  btcstaking.FieldStakerKey,
		},
		{
			name:   "no finality provider keys",
			mutate: func(p *btcstaking.RawStakingParameters) { p.FinalityProviderKeys = nil },
			field:  btcstaking.FieldFinalityProviderKeys,
		},
		{
			name: "short finality provider key",
			mutate: func(p *btcstaking.RawStakingParameters) {
				p.FinalityProviderKeys = append(p.FinalityProviderKeys, make([]byte, 20))
			},
			field: btcstaking.FieldFinalityProviderKeys,
		},
		{
			name:   "no covenant keys",
			mutate: func(p *btcstaking.RawStakingParameters) { p.CovenantKeys = [][]byte{} },
			field:  btcstaking.FieldCovenantKeys,
		},
		{
			name:   "long covenant key",
			mutate: func(p *btcstaking.RawStakingParameters) { p.CovenantKeys[1] = make([]byte, 33) },
			field:  btcstaking.FieldCovenantKeys,
		},
		{
			name:   "zero threshold",
			mutate: func(p *btcstaking.RawStakingParameters) { p.CovenantThreshold = 0 },
			field:  btcstaking.FieldCovenantThreshold,
		},
		{
			name:   "threshold above covenant key count",
			mutate: func(p *btcstaking.RawStakingParameters) { p.CovenantThreshold = 4 },
			field:  btcstaking.FieldCovenantThreshold,
		},
		{
			name:   "zero staking timelock",
			mutate: func(p *btcstaking.RawStakingParameters) { p.StakingTimelock = 0 },
			field:  btcstaking.FieldStakingTimelock,
		},
		{
			name:   "staking timelock above uint16",
			mutate: func(p *btcstaking.RawStakingParameters) { p.StakingTimelock = 65536 },
			field:  btcstaking.FieldStakingTimelock,
		},
		{
			name:   "zero unbonding timelock",
			mutate: func(p *btcstaking.RawStakingParameters) { p.UnbondingTimelock = 0 },
			field:  btcstaking.FieldUnbondingTimelock,
		},
		{
			name:   "unbonding timelock above uint16",
			mutate: func(p *btcstaking.RawStakingParameters) { p.UnbondingTimelock = 1 << 20 },
			field:  btcstaking.FieldUnbondingTimelock,
		},
		{
			name:   "empty magic bytes",
			mutate: func(p *btcstaking.RawStakingParameters) { p.MagicBytes = nil },
			field:  btcstaking.FieldMagicBytes,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRawParams()
			tc.mutate(&raw)

			params, err := btcstaking.NewStakingParameters(raw)
			require.Nil(t, params)
			require.ErrorIs(t, err, btcstaking.ErrInvalidScriptParameters)

			var paramErr *btcstaking.InvalidScriptParametersError
			require.True(t, errors.As(err, &paramErr))
			require.Equal(t, tc.field, paramErr.Field)
			require.NotEmpty(t, paramErr.Reason)
			require.Contains(t, err.Error(), tc.field)

			require.Equal(t, err, raw.Validate())
		})
	}
}

func TestNewStakingParametersBoundaries(t *testing.T) {
	raw := validRawParams()
	raw.StakingTimelock = 65535
	raw.UnbondingTimelock = 1
	raw.CovenantThreshold = uint32(len(raw.CovenantKeys))

	params, err := btcstaking.NewStakingParameters(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(65535), params.StakingTimelock())
	require.Equal(t, uint16(1), params.UnbondingTimelock())
	require.Equal(t, uint32(3), params.CovenantThreshold())

	raw.StakingTimelock = 1
	_, err = btcstaking.NewStakingParameters(raw)
	require.NoError(t, err)
}

func TestStakingParametersOwnTheirBuffers(t *testing.T) {
	raw := validRawParams()
	params, err := btcstaking.NewStakingParameters(raw)
	require.NoError(t, err)

	// mutating the caller's buffers after construction has no effect
	raw.StakerKey[0] = 0xFF
	raw.FinalityProviderKeys[0][0] = 0xFF
	raw.CovenantKeys[0][0] = 0xFF
	raw.CovenantKeys[2] = make([]byte, 32)
	raw.MagicBytes[0] = 0x00

	require.Equal(t, bytes.Repeat([]byte{0x01}, 32), params.StakerKey())
	require.Equal(t, bytes.Repeat([]byte{0x02}, 32), params.FinalityProviderKeys()[0])
	require.Equal(t, bytes.Repeat([]byte{0x03}, 32), params.CovenantKeys()[0])
	require.Equal(t, bytes.Repeat([]byte{0x05}, 32), params.CovenantKeys()[2])
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, params.MagicBytes())

	// neither does mutating what the getters return
	params.StakerKey()[0] = 0xFF
	params.CovenantKeys()[1][0] = 0xFF
	params.MagicBytes()[0] = 0x00
	require.Equal(t, bytes.Repeat([]byte{0x01}, 32), params.StakerKey())
	require.Equal(t, bytes.Repeat([]byte{0x04}, 32), params.CovenantKeys()[1])
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, params.MagicBytes())
}

func FuzzValidateRandomParams(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))

		raw := testutil.GenRandomRawStakingParams(r, t)
		require.NoError(t, raw.Validate())

		params, err := btcstaking.NewStakingParameters(raw)
		require.NoError(t, err)
		require.Equal(t, raw.StakerKey, params.StakerKey())
		require.Equal(t, raw.FinalityProviderKeys, params.FinalityProviderKeys())
		require.Equal(t, raw.CovenantKeys, params.CovenantKeys())
		require.Equal(t, raw.CovenantThreshold, params.CovenantThreshold())
		require.Equal(t, uint16(raw.StakingTimelock), params.StakingTimelock())
		require.Equal(t, uint16(raw.UnbondingTimelock), params.UnbondingTimelock())

		// breaking the threshold invariant is always caught
		raw.CovenantThreshold = uint32(len(raw.CovenantKeys) + 1 + r.Intn(10))
		var paramErr *btcstaking.InvalidScriptParametersError
		require.ErrorAs(t, raw.Validate(), &paramErr)
		require.Equal(t, btcstaking.FieldCovenantThreshold, paramErr.Field)
	})
}
