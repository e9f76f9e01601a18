package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translate-requirements",
		Short: "English to Vietnamese requirements dataset translator",
		Long: `translate-requirements translates a software requirements dataset
(one FR/NFR requirement per line) from English to Vietnamese using an
LLM API. Lines are batched per API call and the output file is written
after every batch, so interrupted runs can be resumed.

Examples:
  translate-requirements --input Dataset_Full_EN.txt --output Dataset_Full_Vietnamese.txt
  translate-requirements --input Dataset_Full_EN.txt --output Dataset_Full_Vietnamese.txt --resume
  translate-requirements --list-models`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.translate-requirements.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputFile, "input", "i", "", "Input .txt file (one English requirement per line)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Output Vietnamese .txt file")
	cmd.Flags().BoolVar(&flags.Resume, "resume", false, "Resume if the output file already has some lines")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available chat models for the current API key")

	// Translation flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", flags.Model, "Model name")
	cmd.Flags().IntVar(&flags.BatchSize, "batch-size", flags.BatchSize, "Lines per API call")
	cmd.Flags().IntVar(&flags.MaxRetries, "max-retries", flags.MaxRetries, "Attempts per batch before giving up")
	cmd.Flags().DurationVar(&flags.RequestTimeout, "request-timeout", flags.RequestTimeout, "Timeout per API call")
	cmd.Flags().StringVar(&flags.CacheFile, "cache", "", "Optional SQLite translation cache file")

	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("translate.provider", fs.Lookup("provider"))
	viper.BindPFlag("translate.model", fs.Lookup("model"))
	viper.BindPFlag("translate.batch_size", fs.Lookup("batch-size"))
	viper.BindPFlag("translate.max_retries", fs.Lookup("max-retries"))
	viper.BindPFlag("translate.request_timeout", fs.Lookup("request-timeout"))
	viper.BindPFlag("translate.cache", fs.Lookup("cache"))
	viper.BindPFlag("output.file", fs.Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// Load .env from the working directory if present, so API keys can be
	// kept next to the dataset
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

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

		// Search config in home directory with name ".translate-requirements"
		// (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".translate-requirements")
	}

	// Environment variables
	viper.SetEnvPrefix("TRANSLATE")
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
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translate.gemini_key")
}

// Validate checks flag combinations that cobra cannot express on its own
func (f *Flags) Validate() error {
	if f.ListModels {
		return nil
	}

	if f.InputFile == "" {
		return fmt.Errorf("--input is required")
	}
	if f.OutputFile == "" {
		return fmt.Errorf("--output is required")
	}
	if f.BatchSize < 1 {
		return fmt.Errorf("--batch-size must be at least 1, got %d", f.BatchSize)
	}
	if f.MaxRetries < 1 {
		return fmt.Errorf("--max-retries must be at least 1, got %d", f.MaxRetries)
	}
	if filepath.Clean(f.InputFile) == filepath.Clean(f.OutputFile) {
		return fmt.Errorf("input and output must be different files")
	}

	return nil
}
