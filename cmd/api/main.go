// @title purrlog API
// @version 1.0
// @description Registro diario de actividades de mascotas con asistente de IA.
// @BasePath /
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "purrlog",
	Short: "Registro diario de actividades de mascotas",
	Long: `purrlog expone la API HTTP del registro de actividades (comida, agua,
pis, caca, juego, sueño, medicación, aseo) y del asistente de IA.

Sin subcomando arranca el servidor (igual que "purrlog serve").`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("PURRLOG_CONFIG"), "archivo YAML de configuración (opcional)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCheckCmd)
}
