package main

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli"

	stkcfg "github.com/babylonchain/btc-staking-scripts/config"
	"github.com/babylonchain/btc-staking-scripts/util"
)

var initCommand = cli.Command{
	Name:  "init",
	Usage: "Initialize a stkscript home directory.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  homeFlag,
			Usage: "Path to where the home directory will be initialized",
			Value: stkcfg.DefaultStkScriptDir,
		},
		cli.BoolFlag{
			Name:     forceFlag,
			Usage:    "Override existing configuration",
			Required: false,
		},
	},
	Action: initHome,
}

func initHome(c *cli.Context) error {
	homePath, err := filepath.Abs(c.String(homeFlag))
	if err != nil {
		return err
	}
	force := c.Bool(forceFlag)

	if util.FileExists(stkcfg.ConfigFile(homePath)) && !force {
		return fmt.Errorf("config already exists in home path %s", homePath)
	}

	// ensure the directory exists
	homePath = util.CleanAndExpandPath(homePath)
	if err := util.MakeDirectory(homePath); err != nil {
		return err
	}
	// Create log directory
	if err := util.MakeDirectory(stkcfg.LogDir(homePath)); err != nil {
		return err
	}

	defaultConfig := stkcfg.DefaultConfig()
	return stkcfg.WriteConfigFile(&defaultConfig, stkcfg.ConfigFile(homePath))
}
