// Package cmd contains the unitune command tree.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/observability"
)

var (
	cfgFile string
	verbose bool

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unitune",
	Short: "Universal music share-link frontend",
	Long: `unitune serves short share links that resolve to every major music
platform. It decodes /s/{identifier} paths, fetches song metadata from the
upstream conversion API, and renders link-preview pages for crawlers and a
progressive shell for browsers.

Use the subcommands to perform specific operations.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./config and the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	observability.InitCLILogger(verbose)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/unitune")
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("UNITUNE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			observability.CLILogger.Debug("Using config file", zap.String("path", viper.ConfigFileUsed()))
		}
	} else {
		// It's OK if config file doesn't exist, we have defaults
		if verbose {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				observability.CLILogger.Debug("No config file found, using defaults and environment variables")
			} else {
				observability.CLILogger.Warn("Error reading config file", zap.Error(err))
			}
		}
	}

	setDefaults()
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")

	// Key-value store defaults; empty addr runs without a store
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Upstream metadata API defaults
	viper.SetDefault("upstream.song_url", "https://api.song.link/v1-alpha.1/links")
	viper.SetDefault("upstream.playlist_url", "")
	viper.SetDefault("upstream.timeout", "10s")

	// Rate limit defaults
	viper.SetDefault("rate_limit.max_tokens", 60.0)
	viper.SetDefault("rate_limit.refill_rate", 1.0)
	viper.SetDefault("rate_limit.window", "60s")

	// Cache defaults
	viper.SetDefault("cache.metadata_ttl", "24h")

	// Site defaults
	viper.SetDefault("site.url", "http://localhost:8080")

	// Donations defaults
	viper.SetDefault("donations.enabled", false)
	viper.SetDefault("donations.goal", 0.0)
	viper.SetDefault("donations.raised", 0.0)
	viper.SetDefault("donations.currency", "EUR")

	viper.SetDefault("environment", "production")
	viper.SetDefault("debug", false)
}
