package testutil

import (
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-scripts/btcstaking"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newHeaderBytes := make([]byte, length)
	r.Read(newHeaderBytes)
	return newHeaderBytes
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	randBytes := GenRandomByteArray(r, length)
	return hex.EncodeToString(randBytes)
}

func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

// GenRandomXOnlyPubKey returns a BIP-340 serialized public key of a fresh
// random private key.
func GenRandomXOnlyPubKey(r *rand.Rand, t *testing.T) []byte {
	var seed [32]byte
	for {
		r.Read(seed[:])
		sk, pk := btcec.PrivKeyFromBytes(seed[:])
		if sk.Key.IsZero() {
			continue
		}
		return schnorr.SerializePubKey(pk)
	}
}

func GenRandomXOnlyPubKeys(r *rand.Rand, t *testing.T, num int) [][]byte {
	keys := make([][]byte, 0, num)
	for i := 0; i < num; i++ {
		keys = append(keys, GenRandomXOnlyPubKey(r, t))
	}
	return keys
}

func GenRandomMagicBytes(r *rand.Rand) []byte {
	return GenRandomByteArray(r, 4)
}

// GenRandomRawStakingParams returns raw staking parameters that pass
// validation.
func GenRandomRawStakingParams(r *rand.Rand, t *testing.T) btcstaking.RawStakingParameters {
	covNum := r.Intn(9) + 1
	covThreshold := r.Intn(covNum) + 1
	fpNum := r.Intn(3) + 1

	return btcstaking.RawStakingParameters{
		StakerKey:            GenRandomXOnlyPubKey(r, t),
		FinalityProviderKeys: GenRandomXOnlyPubKeys(r, t, fpNum),
		CovenantKeys:         GenRandomXOnlyPubKeys(r, t, covNum),
		CovenantThreshold:    uint32(covThreshold),
		StakingTimelock:      uint32(r.Intn(btcstaking.MaxTimelockBlocks) + 1),
		UnbondingTimelock:    uint32(r.Intn(btcstaking.MaxTimelockBlocks) + 1),
		MagicBytes:           GenRandomMagicBytes(r),
	}
}

func GenRandomStakingParams(r *rand.Rand, t *testing.T) *btcstaking.StakingParameters {
	params, err := btcstaking.NewStakingParameters(GenRandomRawStakingParams(r, t))
	require.NoError(t, err)
	return params
}
