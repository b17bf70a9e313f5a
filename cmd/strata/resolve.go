package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/strata"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve and print the merged configuration",
	Long: `Resolve configuration from a file and/or prefixed environment
variables and print the merged tree.

Examples:
  strata resolve -f config.yaml
  strata resolve -f config.toml -p APP
  strata resolve -p APP -s _ -o json`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringP("file", "f", "", "configuration file path")
	resolveCmd.Flags().StringP("prefix", "p", "", "environment variable prefix")
	resolveCmd.Flags().StringP("separator", "s", "", `environment variable separator (default "__")`)
	resolveCmd.Flags().StringP("output", "o", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	cfg, err := strata.Load[map[string]any](paramFromFlags(cmd.Flags()))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	rendered, err := renderTree(cfg, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(string(rendered), "\n"))
	return nil
}

// paramFromFlags builds loading parameters from the resolve flag set.
// A separator given without a prefix still enables the environment source
// so the loader can reject it with its usual typed error.
func paramFromFlags(flags *pflag.FlagSet) strata.Param {
	file, _ := flags.GetString("file")
	prefix, _ := flags.GetString("prefix")
	separator, _ := flags.GetString("separator")

	param := strata.Param{File: file}
	if prefix != "" || separator != "" {
		param.Env = &strata.EnvConfig{Prefix: prefix, Separator: separator}
	}
	return param
}

func renderTree(tree map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(tree, "", "  ")
	case "yaml":
		return yaml.Marshal(tree)
	default:
		return nil, fmt.Errorf("unknown output format: %s (valid formats: yaml, json)", format)
	}
}
