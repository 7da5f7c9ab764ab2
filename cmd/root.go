package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/logger"
	"github.com/abhisek/intervu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "AI mock interviewer",
	Long:  "Intervu — terminal mock-interview coach: HR, domain and resume-driven rounds scored by an LLM.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; real env vars still apply.
		_ = godotenv.Load()

		if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
		}
		return viper.BindPFlags(cmd.Flags())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (YAML)")
	pf.String("db", "", "Path to SQLite database file (overrides INTERVU_DB env var)")
	pf.Bool("debug", false, "Enable debug logging")
	pf.Bool("json-logs", false, "Emit logs as JSON")

	viper.SetEnvPrefix("INTERVU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildLogger constructs the process logger from the resolved settings.
func buildLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json-logs"), viper.GetBool("debug"))
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the INTERVU_DB env var or config file, then the
// default XDG path.
func resolveDBPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLLMConfig layers the LLM settings: defaults, then the llm
// section of the config file, then INTERVU_* environment variables.
func resolveLLMConfig() (llm.Config, error) {
	cfg := llm.DefaultConfig()
	if viper.IsSet("llm") {
		if err := viper.UnmarshalKey("llm", &cfg); err != nil {
			return llm.Config{}, fmt.Errorf("parse llm config: %w", err)
		}
	}
	return llm.ResolveConfig(cfg)
}
