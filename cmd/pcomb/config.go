package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the command line tool.
type Config struct {
	Parser string `toml:"parser"`
	Prompt string `toml:"prompt"`
	Trace  string `toml:"trace"`
	Tree   bool   `toml:"tree"`
	Init   string `toml:"init"`
}

func defaultConfig() Config {
	return Config{
		Parser: "hexint",
		Prompt: "pcomb> ",
		Trace:  "Info",
	}
}

// loadConfig reads a TOML configuration file. Settings missing from the file
// keep their default values. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return defaultConfig(), fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Errorf("config file %s: unknown setting '%s'", path, key.String())
	}
	return cfg, nil
}
