package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/factdash/internal/logger"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// APIKeyEnv is the environment variable holding the fact-check API key
const APIKeyEnv = "GOOGLE_FACT_CHECK_API"

// Version is the release reported by "factdash version"
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "factdash",
	Short: "factdash - collect fact-checked claims and cross-check their verdicts",
	Long: `factdash collects rated claims from a fact-checking site's listing pages
for a date range and cross-references each claim against the Google Fact
Check Tools claim search API.

Results are shown as tables and a verdict distribution, exported as CSV,
or served through a small dashboard API.

Set ` + APIKeyEnv + ` (environment or .env) to enable verification.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := viper.GetString("log.level")
		if verbose {
			level = "debug"
		}
		logger.Init(level, viper.GetString("log.format"))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "factdash %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.factdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, the config file and ENV variables
func initConfig() {
	// .env never overrides variables already set in the environment
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "⚠️  Could not load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
		} else {
			viper.AddConfigPath(filepath.Join(home, ".factdash"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	bindConfig(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// bindConfig registers defaults and environment bindings on v.
// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func bindConfig(v *viper.Viper) {
	d := model.DefaultConfig()
	defaults := map[string]interface{}{
		"http.timeout":             d.HTTP.Timeout,
		"http.user_agent":          d.HTTP.UserAgent,
		"http.max_body_bytes":      d.HTTP.MaxBodyBytes,
		"http.http_proxy":          d.HTTP.HTTPProxy,
		"http.https_proxy":         d.HTTP.HTTPSProxy,
		"http.no_proxy":            d.HTTP.NoProxy,
		"collector.listing_url":    d.Collector.ListingURL,
		"collector.output_path":    d.Collector.OutputPath,
		"collector.respect_robots": d.Collector.RespectRobots,
		"factcheck.endpoint":       d.FactCheck.Endpoint,
		"factcheck.cache_ttl":      d.FactCheck.CacheTTL,
		"server.addr":              d.Server.Addr,
		"log.level":                d.Log.Level,
		"log.format":               d.Log.Format,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Read in environment variables that match FACTDASH_*
	v.SetEnvPrefix("FACTDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("factcheck.api_key", "FACTDASH_FACTCHECK_API_KEY", APIKeyEnv)
}

// configFrom decodes the effective configuration held by v
func configFrom(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// loadConfig returns the configuration for the current command
func loadConfig() (*model.Config, error) {
	return configFrom(viper.GetViper())
}
