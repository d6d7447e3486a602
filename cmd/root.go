package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/config"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/logger"
)

var (
	cfgFile    string
	dbPath     string
	matchesDir string
	logLevel   string

	cfg *config.Config
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "islviz",
	Short: "OPTA match event action maps",
	Long: `Ingest per-match OPTA event logs, classify every action, and build
render plans (action layers, pass density, convex hull) for a team or player.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default $ISLVIZ_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&matchesDir, "matches", "", "directory of <match>.csv event logs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

// loadConfig layers explicitly set flags over the koanf config.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Context(), cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		c.DBPath = dbPath
	}
	if flags.Changed("matches") {
		c.MatchesDir = matchesDir
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	log = logger.New(cfg.LogLevel)
	log.Debug().Str("db", cfg.DBPath).Str("matches", cfg.MatchesDir).Msg("config loaded")
	return nil
}
