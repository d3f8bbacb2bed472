package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomirror/internal/config"
	"github.com/philipparndt/gomirror/internal/logger"
)

var (
	cfg        *config.Config
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gomirror",
	Short: "Deterministic mirroring for STL files",
	Long: `gomirror mirrors STL (Stereolithography) models across an axis plane and
deterministically corrects face winding and normals. Whether winding is
reversed is decided from the sign of the transform's determinant, never
guessed from the geometry, so open and non-manifold meshes are handled
the same way as closed ones.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./gomirror.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
