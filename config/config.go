package config

import (
	"fmt"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"

	"github.com/babylonchain/btc-staking-scripts/log"
	"github.com/babylonchain/btc-staking-scripts/util"
)

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "auto"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "stkscript.log"
	defaultConfigFileName = "stkscript.conf"
)

var (
	//   C:\Users\<username>\AppData\Local\ on Windows
	//   ~/.stkscript on Linux
	//   ~/Library/Application Support/Stkscript on MacOS
	DefaultStkScriptDir = btcutil.AppDataDir("stkscript", false)

	DefaultConfigFile = ConfigFile(DefaultStkScriptDir)
)

// Config is the main config of the stkscript cli.
type Config struct {
	LogLevel  string `long:"loglevel" description:"Logging level for all subsystems" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	LogFormat string `long:"logformat" description:"Format of the log output" choice:"auto" choice:"console" choice:"json" choice:"logfmt"`

	StakingConfig *StakingConfig `group:"staking" namespace:"staking"`
}

func DefaultConfig() Config {
	stakingCfg := DefaultStakingConfig()
	cfg := Config{
		LogLevel:      defaultLogLevel,
		LogFormat:     defaultLogFormat,
		StakingConfig: &stakingCfg,
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func ConfigFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

// LoadConfig parses the config file under homePath. Staking parameters are
// not checked here; that happens when they are converted with
// StakingConfig.ToStakingParameters.
func LoadConfig(homePath string) (*Config, error) {
	// The home directory is required to have a configuration file with a specific name
	// under it.
	cfgFile := ConfigFile(homePath)
	if !util.FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	cfg := DefaultConfig()
	fileParser := flags.NewParser(&cfg, flags.Default)
	if err := flags.NewIniParser(fileParser).ParseFile(cfgFile); err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteConfigFile writes cfg, with comments and defaults, to path.
func WriteConfigFile(cfg *Config, path string) error {
	fileParser := flags.NewParser(cfg, flags.Default)
	return flags.NewIniParser(fileParser).WriteFile(path, flags.IniIncludeComments|flags.IniIncludeDefaults)
}

// Validate checks the logging settings and the presence of the staking
// section.
func (cfg *Config) Validate() error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	switch cfg.LogFormat {
	case "auto", "console", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.StakingConfig == nil {
		return fmt.Errorf("empty staking config")
	}

	return nil
}
