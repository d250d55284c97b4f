package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/posterior"
)

// Flag and configuration keys.
const (
	keyConfig         = "config"
	keyVerbose        = "verbose"
	keyFormat         = "format"
	keyNull           = "null"
	keyGroup          = "group"
	keyVar            = "var"
	keyFilter         = "filter"
	keySeparateChains = "separate-chains"
	keyNumSamples     = "num-samples"
	keySeed           = "seed"
	keyVariableName   = "variable-name"
	keyValueName      = "value-name"
	keyWidth          = "width"
)

// envPrefix prefixes every environment variable read by the CLI.
const envPrefix = "POLARBAYES"

// app carries the state shared by all commands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger // nil until PersistentPreRunE unless preset by tests
}

// newApp returns an app reading POLARBAYES_* variables.
func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{v: v}
}

// newRootCmd assembles the command tree.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "polarbayes",
		Short: "Reshape posterior draws into tidy tables",
		Long: `polarbayes reads posterior samples (YAML or JSON) and writes them as tables.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (POLARBAYES_*, dashes become underscores)
  3. The file given with --config`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "configuration file (YAML or JSON)")
	pf.BoolP(keyVerbose, "v", false, "debug logging")
	pf.StringP(keyFormat, "f", "csv", "output format: csv or json")
	pf.String(keyNull, "NA", "CSV representation of null cells")

	root.AddCommand(
		newInfoCmd(a),
		newSpreadCmd(a),
		newGatherCmd(a),
		newSummaryCmd(a),
	)

	return root
}

// setup binds flags, reads the optional config file and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if a.logger != nil {
		return nil
	}
	config := zap.NewProductionConfig()
	if a.v.GetBool(keyVerbose) {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// addExtractFlags registers the selection and sub-sampling flags.
func addExtractFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP(keyGroup, "g", posterior.DefaultGroup, "group to extract")
	f.StringSlice(keyVar, nil, "variable names or patterns; ~NAME excludes (repeatable)")
	f.String(keyFilter, "none", "how --var is matched: none, like or regex")
	f.Bool(keySeparateChains, false, "keep chains separate instead of combining them")
	f.Int(keyNumSamples, 0, "draw this many samples without replacement (0 = all)")
	f.Int64(keySeed, 0, "seed for --num-samples")
}

// extractOptions turns the resolved configuration into posterior options.
func (a *app) extractOptions() ([]posterior.Option, error) {
	filter, err := posterior.ParseFilter(a.v.GetString(keyFilter))
	if err != nil {
		return nil, err
	}
	group := a.v.GetString(keyGroup)
	if group == "" {
		group = posterior.DefaultGroup
	}
	opts := []posterior.Option{
		posterior.WithGroup(group),
		posterior.WithCombined(!a.v.GetBool(keySeparateChains)),
		posterior.WithVarNames(a.v.GetStringSlice(keyVar)...),
		posterior.WithFilter(filter),
	}
	switch n := a.v.GetInt(keyNumSamples); {
	case n < 0:
		return nil, fmt.Errorf("--%s must not be negative, got %d", keyNumSamples, n)
	case n > 0:
		opts = append(opts, posterior.WithNumSamples(n))
	}
	if a.v.IsSet(keySeed) {
		opts = append(opts, posterior.WithSeed(a.v.GetInt64(keySeed)))
	}

	return opts, nil
}

// load decodes the posterior file named by the single argument.
func (a *app) load(path string) (*posterior.InferenceData, error) {
	a.logger.Debug("loading posterior file", zap.String("path", path))
	data, err := posterior.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded posterior file", zap.String("path", path), zap.Strings("groups", data.Groups()))

	return data, nil
}

// write renders f in the configured format on the command's output.
func (a *app) write(cmd *cobra.Command, f *frame.Frame) error {
	format := a.v.GetString(keyFormat)
	a.logger.Info("writing table",
		zap.String("command", cmd.Name()),
		zap.String("format", format),
		zap.Int("rows", f.NumRows()),
		zap.Strings("columns", f.Columns()),
	)

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return f.WriteCSV(out, a.v.GetString(keyNull))
	case "json":
		return f.WriteJSON(out)
	default:
		return fmt.Errorf("unknown --%s %q (want csv or json)", keyFormat, format)
	}
}
