package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/codeshift/internal"
	"codeberg.org/snonux/codeshift/internal/provider"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codeshift [file]",
		Short: "LLM-backed source code converter",
		Long: `codeshift converts source code between programming languages using a
hosted large-language-model API.

Without arguments it launches the interactive GUI. With a file argument
(or "-" for stdin) it converts once and prints the result.

Examples:
  codeshift                             # Launch interactive GUI (default)
  codeshift --to go main.py             # Convert a Python file to Go
  codeshift --from ruby --to rust - <x  # Convert stdin
  codeshift --batch files.txt --to go   # Convert multiple files
  codeshift --history 10                # Show the last 10 conversions`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.codeshift.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.From, "from", "f", flags.From, "Source language (or \"auto\" to let the model infer it)")
	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Target language")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write converted code to file instead of stdout")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Convert files listed in this file (one path per line)")
	cmd.Flags().IntVar(&flags.History, "history", 0, "Show the last N conversions and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available chat models for the current API key")

	// Provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Model provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model identifier (default depends on the provider)")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Decoding temperature (low values keep output deterministic)")
	cmd.Flags().IntVar(&flags.Timeout, "timeout", flags.Timeout, "Per-request timeout in seconds")
	cmd.Flags().IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "Maximum tokens the model may generate")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("convert.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("convert.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("convert.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("convert.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("convert.max_tokens", cmd.Flags().Lookup("max-tokens"))
	viper.BindPFlag("convert.from", cmd.Flags().Lookup("from"))
	viper.BindPFlag("convert.to", cmd.Flags().Lookup("to"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".codeshift" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".codeshift")
	}

	// Environment variables
	viper.SetEnvPrefix("CODESHIFT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("gemini.api_key")
}

// ProviderConfig builds the provider configuration from flags, config
// file and environment
func ProviderConfig(flags *Flags) *provider.Config {
	config := provider.DefaultConfig()
	config.Provider = flags.Provider
	config.Model = flags.Model
	config.Temperature = float32(flags.Temperature)
	config.MaxTokens = flags.MaxTokens
	if flags.Timeout > 0 {
		config.Timeout = time.Duration(flags.Timeout) * time.Second
	}
	config.OpenAIKey = GetOpenAIKey()
	config.GeminiKey = GetGeminiKey()
	return config
}
