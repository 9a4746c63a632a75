// Package cmd provides CLI commands for zenmeta.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coecms/zenmeta/deposit"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var (
	portal     string
	production bool
	community  string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "zenmeta",
	Short: "Convert dataset metadata and manage archive deposits",
	Long: `Zenmeta converts dataset metadata from catalogue records (GeoNetwork XML,
CSIRO Data Access Portal JSON) into a common plan format, serializes plans
for the Zenodo or InvenioRDM deposit APIs, and drives the deposit lifecycle:
create drafts, upload files, list and remove records.

Examples:
  zenmeta convert geonetwork -i record.xml -o plans.json
  zenmeta meta -i plans.json --portal zenodo
  zenmeta upload 123456 data.nc readme.txt --portal zenodo --production
  zenmeta list --portal zenodo --output bibtex
  zenmeta remove 123456 --portal zenodo`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".zenmeta")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("zenmeta")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, tokens may come from the environment.
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// apiToken resolves the token for the selected portal and environment,
// e.g. config key "tokens.zenodo.sandbox" or env ZENMETA_TOKENS_ZENODO_SANDBOX.
func apiToken() (string, error) {
	env := "sandbox"
	if production {
		env = "production"
	}
	key := fmt.Sprintf("tokens.%s.%s", portal, env)
	token := viper.GetString(key)
	if token == "" {
		return "", fmt.Errorf("no api token configured for %s %s (set %s in the config file or ZENMETA_%s)",
			portal, env, key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
	return token, nil
}

// newDepositClient builds a client from the persistent portal flags.
func newDepositClient() (*deposit.Client, error) {
	token, err := apiToken()
	if err != nil {
		return nil, err
	}
	return deposit.NewClient(portal, production, token)
}

// communityID returns the community flag, falling back to the portal's
// configured default.
func communityID() string {
	if community != "" {
		return community
	}
	return viper.GetString(fmt.Sprintf("communities.%s", portal))
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&portal, "portal", deposit.PortalZenodo, "Deposit portal (zenodo, invenio)")
	rootCmd.PersistentFlags().BoolVar(&production, "production", false, "Use the production portal instead of the sandbox")
	rootCmd.PersistentFlags().StringVar(&community, "community", "", "Community identifier for deposits and listings")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.zenmeta.yaml)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(listCmd)
}
