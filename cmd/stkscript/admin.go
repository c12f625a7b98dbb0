package main

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli"

	stkcfg "github.com/babylonchain/btc-staking-scripts/config"
	"github.com/babylonchain/btc-staking-scripts/util"
)

var adminCommands = []cli.Command{
	{
		Name:      "admin",
		ShortName: "ad",
		Usage:     "Different utility and admin commands.",
		Category:  "Admin",
		Subcommands: []cli.Command{
			dumpCfgCommand,
		},
	},
}

var dumpCfgCommand = cli.Command{
	Name:      "dump-config",
	ShortName: "dc",
	Usage:     "Dump default configuration file.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  configFileFlag,
			Usage: "Path to where the default config file will be dumped",
			Value: stkcfg.DefaultConfigFile,
		},
	},
	Action: dumpCfg,
}

func dumpCfg(c *cli.Context) error {
	configPath := util.CleanAndExpandPath(c.String(configFileFlag))

	if util.FileExists(configPath) {
		return fmt.Errorf("config already exists under provided path: %s", configPath)
	}

	// ensure the directory exists
	if err := util.MakeDirectory(filepath.Dir(configPath)); err != nil {
		return err
	}

	defaultConfig := stkcfg.DefaultConfig()
	return stkcfg.WriteConfigFile(&defaultConfig, configPath)
}
