package config

import (
	"encoding/hex"
	"fmt"

	"github.com/babylonchain/btc-staking-scripts/btcstaking"
)

const (
	defaultCovenantQuorum = 1
	defaultStakingTime    = 64000
	defaultUnbondingTime  = 1008
	// "bbt4"
	defaultMagicBytes = "62627434"
)

// StakingConfig carries the staking parameters in their textual form. Keys
// are hex encoded BIP-340 public keys.
type StakingConfig struct {
	StakerPk            string   `long:"stakerpk" description:"The hex encoded BIP-340 public key of the staker"`
	FinalityProviderPks []string `long:"finalityproviderpk" description:"The hex encoded BIP-340 public key of a finality provider; can be repeated"`
	CovenantPks         []string `long:"covenantpk" description:"The hex encoded BIP-340 public key of a covenant member; can be repeated, order is kept"`
	CovenantQuorum      uint32   `long:"covenantquorum" description:"The number of covenant signatures required"`
	StakingTime         uint32   `long:"stakingtime" description:"The staking timelock in BTC blocks"`
	UnbondingTime       uint32   `long:"unbondingtime" description:"The unbonding timelock in BTC blocks"`
	MagicBytes          string   `long:"magicbytes" description:"The hex encoded tag identifying the protocol in data embed outputs"`
}

func DefaultStakingConfig() StakingConfig {
	return StakingConfig{
		CovenantQuorum: defaultCovenantQuorum,
		StakingTime:    defaultStakingTime,
		UnbondingTime:  defaultUnbondingTime,
		MagicBytes:     defaultMagicBytes,
	}
}

// ToStakingParameters decodes the config and validates it as staking
// parameters.
func (cfg *StakingConfig) ToStakingParameters() (*btcstaking.StakingParameters, error) {
	stakerPk, err := decodeHexField("stakerpk", cfg.StakerPk)
	if err != nil {
		return nil, err
	}

	fpPks, err := decodeHexList("finalityproviderpk", cfg.FinalityProviderPks)
	if err != nil {
		return nil, err
	}

	covenantPks, err := decodeHexList("covenantpk", cfg.CovenantPks)
	if err != nil {
		return nil, err
	}

	magicBytes, err := decodeHexField("magicbytes", cfg.MagicBytes)
	if err != nil {
		return nil, err
	}

	return btcstaking.NewStakingParameters(btcstaking.RawStakingParameters{
		StakerKey:            stakerPk,
		FinalityProviderKeys: fpPks,
		CovenantKeys:         covenantPks,
		CovenantThreshold:    cfg.CovenantQuorum,
		StakingTimelock:      cfg.StakingTime,
		UnbondingTimelock:    cfg.UnbondingTime,
		MagicBytes:           magicBytes,
	})
}

func decodeHexField(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid hex in %s: %w", name, err)
	}
	return b, nil
}

func decodeHexList(name string, values []string) ([][]byte, error) {
	res := make([][]byte, 0, len(values))
	for i, v := range values {
		b, err := decodeHexField(fmt.Sprintf("%s[%d]", name, i), v)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, nil
}
