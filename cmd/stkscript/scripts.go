package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	errorsmod "cosmossdk.io/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-scripts/btcstaking"
	stkcfg "github.com/babylonchain/btc-staking-scripts/config"
	"github.com/babylonchain/btc-staking-scripts/log"
)

var scriptCommands = []cli.Command{
	{
		Name:     "policies",
		Usage:    "Print the rendered policies of the staking scripts.",
		Category: "Scripts",
		Flags:    []cli.Flag{homeCliFlag},
		Action:   printPolicies,
	},
	{
		Name:     "data-embed",
		Usage:    "Print the data embed (OP_RETURN) script and its payload.",
		Category: "Scripts",
		Flags:    []cli.Flag{homeCliFlag},
		Action:   printDataEmbed,
	},
}

var homeCliFlag = cli.StringFlag{
	Name:  homeFlag,
	Usage: "The path to the stkscript home directory",
	Value: stkcfg.DefaultStkScriptDir,
}

type DataEmbedResponse struct {
	PayloadHex string `json:"payload_hex"`
	ScriptHex  string `json:"script_hex"`
	Version    byte   `json:"version"`
}

// loadBuilder returns a script builder without a policy compiler; only the
// rendering and assembling operations may be used on it. The caller must run
// the returned cleanup once done with the logger.
func loadBuilder(c *cli.Context) (*btcstaking.StakingScriptBuilder, *zap.Logger, func() error, error) {
	homePath := c.String(homeFlag)
	cfg, err := stkcfg.LoadConfig(homePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config at %s: %w", homePath, err)
	}

	params, err := cfg.StakingConfig.ToStakingParameters()
	if err != nil {
		return nil, nil, nil, errorsmod.Wrapf(err, "invalid staking config in %s", stkcfg.ConfigFile(homePath))
	}

	logger, cleanup, err := log.NewRootLoggerWithFile(cfg.LogFormat, cfg.LogLevel, stkcfg.LogFile(homePath), errWriter(c))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize the logger: %w", err)
	}

	return btcstaking.NewStakingScriptBuilder(params, nil, btcstaking.NewTxScriptAssembler(), logger), logger, cleanup, nil
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

func printPolicies(c *cli.Context) error {
	builder, logger, cleanup, err := loadBuilder(c)
	if err != nil {
		return err
	}
	defer cleanup()

	policies, err := builder.Policies()
	if err != nil {
		return err
	}
	logger.Debug("rendered staking policies",
		zap.Int("finality_providers", len(builder.Params().FinalityProviderKeys())),
		zap.Int("covenants", len(builder.Params().CovenantKeys())),
	)

	return printRespJSON(c, policies)
}

func printDataEmbed(c *cli.Context) error {
	builder, _, cleanup, err := loadBuilder(c)
	if err != nil {
		return err
	}
	defer cleanup()

	script, err := builder.BuildDataEmbedScript()
	if err != nil {
		return err
	}

	return printRespJSON(c, &DataEmbedResponse{
		PayloadHex: hex.EncodeToString(btcstaking.SerializeDataEmbedPayload(builder.Params())),
		ScriptHex:  hex.EncodeToString(script),
		Version:    btcstaking.DataEmbedVersion,
	})
}

func printRespJSON(c *cli.Context, resp interface{}) error {
	jsonBytes, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}

	_, err = fmt.Fprintf(c.App.Writer, "%s\n", jsonBytes)
	return err
}
