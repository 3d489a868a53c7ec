package main

import (
	"fmt"
	"os"

	"tabata_timer/internal/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tabata",
	Short: "Tabata interval timer server",
	Long: `Tabata runs alternating-exercise interval workouts:
1. Serves the session API and state/cue stream (serve, the default)
2. Lists the workout catalog with durations (workouts)
3. Shows or clears saved progress (progress)
4. Manages the controller PIN (pin)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// @title                       Tabata Timer API
// @version                     1.0
// @description                 Controls a tabata workout session and streams its state and audio cues.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default configs/config.yml)")
	rootCmd.AddCommand(serveCmd, workoutsCmd, progressCmd, pinCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
