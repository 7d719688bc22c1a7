// Package cli wires the logipair commands: dataset generation, batch builds,
// rule listing, strength analysis and configuration management.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpeirce/logipair/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "logipair",
	Short: "Logipair - rule-driven logical argument pair generation",
	Long: `Logipair synthesizes paired natural-language arguments for reasoning
evaluation datasets.

Each pair applies one formal inference rule twice over the same bank of
sentences: once correctly and once as the rule's characteristic fallacy.
The result is a paired-comparison dataset where the only systematic
difference between the two options is logical structure.

Generation is fully deterministic under a fixed seed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
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
		fmt.Println("logipair v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.logipair/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.logipair")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match LOGIPAIR_*
	viper.SetEnvPrefix("LOGIPAIR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: built-in defaults overlaid
// with any values from the config file. Command flags are applied on top by
// each command.
func loadConfig() model.Config {
	cfg := model.DefaultConfig()

	set := func(key string, apply func()) {
		if viper.IsSet(key) {
			apply()
		}
	}
	set("generation.language", func() { cfg.Generation.Language = viper.GetString("generation.language") })
	set("generation.complexity", func() { cfg.Generation.Complexity = viper.GetString("generation.complexity") })
	set("generation.count", func() { cfg.Generation.Count = viper.GetInt("generation.count") })
	set("generation.seed", func() { cfg.Generation.Seed = viper.GetInt64("generation.seed") })
	set("generation.shared_sentences", func() { cfg.Generation.SharedSentences = viper.GetBool("generation.shared_sentences") })
	set("generation.preset", func() { cfg.Generation.Preset = viper.GetString("generation.preset") })
	set("pool.source", func() { cfg.Pool.Source = viper.GetString("pool.source") })
	set("pool.user_agent", func() { cfg.Pool.UserAgent = viper.GetString("pool.user_agent") })
	set("split.train", func() { cfg.Split.Train = viper.GetFloat64("split.train") })
	set("split.validation", func() { cfg.Split.Validation = viper.GetFloat64("split.validation") })
	set("split.test", func() { cfg.Split.Test = viper.GetFloat64("split.test") })
	set("output.dir", func() { cfg.Output.Dir = viper.GetString("output.dir") })
	set("output.dataset_name", func() { cfg.Output.DatasetName = viper.GetString("output.dataset_name") })
	set("strength.provider", func() { cfg.Strength.Provider = viper.GetString("strength.provider") })
	set("strength.model", func() { cfg.Strength.Model = viper.GetString("strength.model") })

	cfg.Output.Verbose = verbose
	return cfg
}
