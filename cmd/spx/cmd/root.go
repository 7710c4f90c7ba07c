// Package cmd implements the spx CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/sale-prospector/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "spx",
		Short: "CLI client for Sale Prospector",
		Long: "spx is a command-line client for the Sale Prospector API.\n" +
			"It lists recent sales, shows who to message about each one,\n" +
			"records outreach decisions and manages favorite suburbs.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.spx.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("user", "", "acting user ID sent as X-User-ID")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(salesCmd())
	rootCmd.AddCommand(actionsCmd())
	rootCmd.AddCommand(smsCmd())
	rootCmd.AddCommand(favoritesCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(progressCmd())
	rootCmd.AddCommand(jobsCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spx")
	}

	viper.SetEnvPrefix("SPX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"), apiclient.WithUserID(viper.GetString("user")))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
