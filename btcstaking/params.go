package btcstaking

import (
	"math"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

const (
	// XOnlyPubKeyLen is the length of a BIP-340 x-only public key.
	XOnlyPubKeyLen = schnorr.PubKeyBytesLen

	// MaxTimelockBlocks is the largest relative timelock the protocol
	// accepts; the data-commitment payload carries it as a uint16.
	MaxTimelockBlocks = math.MaxUint16
)

// Field names reported by InvalidScriptParametersError.
const (
	FieldStakerKey            = "stakerKey"
	FieldFinalityProviderKeys = "finalityProviderKeys"
	FieldCovenantKeys         = "covenantKeys"
	FieldCovenantThreshold    = "covenantThreshold"
	FieldStakingTimelock      = "stakingTimelock"
	FieldUnbondingTimelock    = "unbondingTimelock"
	FieldMagicBytes           = "magicBytes"
	FieldLockBlocks           = "lockBlocks"
)

// RawStakingParameters is the unvalidated input of NewStakingParameters.
// Numeric fields are wider than their valid ranges so that out-of-range
// values reach validation instead of silently wrapping.
type RawStakingParameters struct {
	StakerKey            []byte
	FinalityProviderKeys [][]byte
	CovenantKeys         [][]byte
	CovenantThreshold    uint32
	StakingTimelock      uint32
	UnbondingTimelock    uint32
	MagicBytes           []byte
}

// Validate checks the raw parameters and reports the first failing field as
// an *InvalidScriptParametersError.
func (p RawStakingParameters) Validate() error {
	if len(p.StakerKey) != XOnlyPubKeyLen {
		return invalidParam(FieldStakerKey, "expected %d bytes, got %d", XOnlyPubKeyLen, len(p.StakerKey))
	}

	if len(p.FinalityProviderKeys) == 0 {
		return invalidParam(FieldFinalityProviderKeys, "at least one key is required")
	}
	for i, k := range p.FinalityProviderKeys {
		if len(k) != XOnlyPubKeyLen {
			return invalidParam(FieldFinalityProviderKeys, "key %d: expected %d bytes, got %d", i, XOnlyPubKeyLen, len(k))
		}
	}

	if len(p.CovenantKeys) == 0 {
		return invalidParam(FieldCovenantKeys, "at least one key is required")
	}
	for i, k := range p.CovenantKeys {
		if len(k) != XOnlyPubKeyLen {
			return invalidParam(FieldCovenantKeys, "key %d: expected %d bytes, got %d", i, XOnlyPubKeyLen, len(k))
		}
	}

	if p.CovenantThreshold == 0 {
		return invalidParam(FieldCovenantThreshold, "must be positive")
	}
	if int(p.CovenantThreshold) > len(p.CovenantKeys) {
		return invalidParam(FieldCovenantThreshold, "%d exceeds the number of covenant keys %d",
			p.CovenantThreshold, len(p.CovenantKeys))
	}

	if err := validateTimelock(FieldStakingTimelock, p.StakingTimelock); err != nil {
		return err
	}
	if err := validateTimelock(FieldUnbondingTimelock, p.UnbondingTimelock); err != nil {
		return err
	}

	if len(p.MagicBytes) == 0 {
		return invalidParam(FieldMagicBytes, "must not be empty")
	}

	return nil
}

func validateTimelock(field string, blocks uint32) error {
	if blocks == 0 || blocks > MaxTimelockBlocks {
		return invalidParam(field, "%d is outside [1, %d]", blocks, MaxTimelockBlocks)
	}
	return nil
}

// StakingParameters is the validated, immutable input of the staking script
// templates. It owns copies of every byte buffer and is safe for concurrent
// use.
type StakingParameters struct {
	stakerKey            []byte
	finalityProviderKeys [][]byte
	covenantKeys         [][]byte
	covenantThreshold    uint32
	stakingTimelock      uint16
	unbondingTimelock    uint16
	magicBytes           []byte
}

// NewStakingParameters validates raw and returns an immutable copy of it.
func NewStakingParameters(raw RawStakingParameters) (*StakingParameters, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	return &StakingParameters{
		stakerKey:            copyBytes(raw.StakerKey),
		finalityProviderKeys: copyKeys(raw.FinalityProviderKeys),
		covenantKeys:         copyKeys(raw.CovenantKeys),
		covenantThreshold:    raw.CovenantThreshold,
		stakingTimelock:      uint16(raw.StakingTimelock),
		unbondingTimelock:    uint16(raw.UnbondingTimelock),
		magicBytes:           copyBytes(raw.MagicBytes),
	}, nil
}

func (p *StakingParameters) StakerKey() []byte {
	return copyBytes(p.stakerKey)
}

func (p *StakingParameters) FinalityProviderKeys() [][]byte {
	return copyKeys(p.finalityProviderKeys)
}

func (p *StakingParameters) CovenantKeys() [][]byte {
	return copyKeys(p.covenantKeys)
}

func (p *StakingParameters) CovenantThreshold() uint32 {
	return p.covenantThreshold
}

func (p *StakingParameters) StakingTimelock() uint16 {
	return p.stakingTimelock
}

func (p *StakingParameters) UnbondingTimelock() uint16 {
	return p.unbondingTimelock
}

func (p *StakingParameters) MagicBytes() []byte {
	return copyBytes(p.magicBytes)
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func copyKeys(keys [][]byte) [][]byte {
	c := make([][]byte, len(keys))
	for i, k := range keys {
		c[i] = copyBytes(k)
	}
	return c
}
