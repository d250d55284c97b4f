package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/gather"
	"github.com/katalvlaran/polarbayes/posterior"
	"github.com/katalvlaran/polarbayes/spread"
	"github.com/katalvlaran/polarbayes/summary"
)

// newInfoCmd lists groups and variables.
func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "List groups, variables, kinds and dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.load(args[0])
			if err != nil {
				return err
			}
			f, err := describe(data)
			if err != nil {
				return err
			}

			return a.write(cmd, f)
		},
	}
}

// describe tabulates one row per (group, variable).
func describe(data *posterior.InferenceData) (*frame.Frame, error) {
	var groups, names, kinds, dims []string
	var chains, draws []int64
	for _, g := range data.Groups() {
		ds, err := data.Group(g)
		if err != nil {
			return nil, err
		}
		for _, name := range ds.Variables() {
			v, _ := ds.Variable(name)
			groups = append(groups, g)
			names = append(names, name)
			kinds = append(kinds, v.Kind().String())
			dims = append(dims, strings.Join(v.Dims(), ","))
			chains = append(chains, int64(len(ds.Chains())))
			draws = append(draws, int64(len(ds.Draws())))
		}
	}

	return frame.New(
		frame.Column{Name: "group", Values: frame.Strings(groups...)},
		frame.Column{Name: "variable", Values: frame.Strings(names...)},
		frame.Column{Name: "kind", Values: frame.Strings(kinds...)},
		frame.Column{Name: "dims", Values: frame.Strings(dims...)},
		frame.Column{Name: "chains", Values: frame.Int64s(chains...)},
		frame.Column{Name: "draws", Values: frame.Int64s(draws...)},
	)
}

// newSpreadCmd writes the wide table.
func newSpreadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spread FILE",
		Short: "Write one column per variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.load(args[0])
			if err != nil {
				return err
			}
			opts, err := a.extractOptions()
			if err != nil {
				return err
			}
			f, index, err := spread.DrawsAndIndexColumns(data, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("spread draws", zap.Strings("index", index))

			return a.write(cmd, f)
		},
	}
	addExtractFlags(cmd)

	return cmd
}

// newGatherCmd writes the tidy table.
func newGatherCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gather FILE",
		Short: "Write one row per (sample, dimension labels, variable)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tidy, err := a.gather(args[0])
			if err != nil {
				return err
			}

			return a.write(cmd, tidy)
		},
	}
	addExtractFlags(cmd)
	addNameFlags(cmd)

	return cmd
}

// newSummaryCmd writes per-variable point and interval estimates.
func newSummaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Write mean, sd, median and an equal-tailed interval per variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tidy, err := a.gather(args[0])
			if err != nil {
				return err
			}
			width := a.v.GetFloat64(keyWidth)
			if !(width > 0 && width < 1) {
				return errWidth(width)
			}
			est, err := summary.PointInterval(tidy,
				summary.WithWidth(width),
				summary.WithValueName(a.v.GetString(keyValueName)),
			)
			if err != nil {
				return err
			}

			return a.write(cmd, est)
		},
	}
	addExtractFlags(cmd)
	addNameFlags(cmd)
	cmd.Flags().Float64(keyWidth, summary.DefaultWidth, "interval width in (0, 1)")

	return cmd
}

// addNameFlags registers the tidy column name flags.
func addNameFlags(cmd *cobra.Command) {
	cmd.Flags().String(keyVariableName, "variable", "name of the variable label column")
	cmd.Flags().String(keyValueName, "value", "name of the value column")
}

// gather loads path and gathers the configured selection.
func (a *app) gather(path string) (*frame.Frame, error) {
	data, err := a.load(path)
	if err != nil {
		return nil, err
	}
	opts, err := a.extractOptions()
	if err != nil {
		return nil, err
	}
	variableName, valueName := a.v.GetString(keyVariableName), a.v.GetString(keyValueName)
	if variableName == "" || valueName == "" {
		return nil, errEmptyName
	}

	return gather.Draws(data,
		gather.WithVariableName(variableName),
		gather.WithValueName(valueName),
		gather.WithExtract(opts...),
	)
}
