package main

import (
	"errors"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/pcomb/registry"
)

// errNoMatch is returned by commands if the input did not match.
var errNoMatch = errors.New("input does not match")

// traceKeys are the tracer keys of all packages of this module.
var traceKeys = []string{"pcomb.cli", "pcomb.comb", "pcomb.stream", "pcomb.result", "pcomb.registry"}

// app holds the state shared by all sub-commands.
type app struct {
	configFile string
	traceLevel string
	cfg        Config
	table      *registry.Table
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(2)
		}
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:   defaultConfig(),
		table: registry.Standard(),
	}
	root := &cobra.Command{
		Use:           "pcomb",
		Short:         "Experiment with parser combinators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&a.traceLevel, "trace", "", "Trace level [Debug|Info|Error]")
	root.AddCommand(newListCmd(a))
	root.AddCommand(newParseCmd(a))
	root.AddCommand(newReplCmd(a))
	return root
}

// setup loads the configuration and sets the trace level. Flags take
// precedence over the configuration file.
func (a *app) setup() error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.traceLevel != "" {
		cfg.Trace = a.traceLevel
	}
	a.cfg = cfg
	level := tracing.TraceLevelFromString(cfg.Trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %s", cfg.Trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
