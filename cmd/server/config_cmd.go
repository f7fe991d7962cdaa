package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var printFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file and environment overrides",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.ValidateConfig(); err != nil {
			color.New(color.FgHiRed).Fprintln(cmd.ErrOrStderr(), "configuration invalid")
			return err
		}
		color.New(color.FgHiGreen).Fprintln(cmd.OutOrStdout(), "configuration ok")
		return nil
	},
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			data []byte
			err  error
		)
		switch printFormat {
		case "json":
			data, err = json.MarshalIndent(cfg, "", "  ")
		case "yaml", "yml":
			data, err = yaml.Marshal(cfg)
		default:
			return fmt.Errorf("unsupported format %q", printFormat)
		}
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configPrintCmd.Flags().StringVarP(&printFormat, "format", "f", "yaml", "output format (yaml|json)")
	configCmd.AddCommand(configValidateCmd, configPrintCmd)
}
