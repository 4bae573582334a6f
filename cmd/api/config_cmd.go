package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"purrlog/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspección de la configuración",
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Carga y valida la configuración, e imprime el resultado con los secretos redactados",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadUnvalidated(configPath)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "config ok")
		return nil
	},
}
