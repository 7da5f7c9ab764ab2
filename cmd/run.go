package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/intervu/internal/app"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Conduct a mock interview",
	Long: `Conduct a mock interview in the chosen mode:

  domain    questions from a category bank (or the built-in set)
  hr        classic HR questions
  resume    questions generated from your resume
  complete  full suite: HR round, domain round, resume round

Answers are typed one per line; /skip skips the current question.
Each round is scored when it ends and a full report is printed at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		log, err := buildLogger()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()

		cfg := runConfig()
		switch cfg.Mode {
		case interview.ModeDomain, interview.ModeHR, interview.ModeResume, interview.ModeComplete:
		default:
			return fmt.Errorf("unknown mode %q (want domain, hr, resume or complete)", cfg.Mode)
		}
		if cfg.Mode == interview.ModeResume && cfg.ResumePath == "" {
			return fmt.Errorf("resume mode requires --resume")
		}

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		llmCfg, err := resolveLLMConfig()
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo(), log)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		a := app.New(cfg, provider, st.ResultRepo(), os.Stdin, os.Stdout, log)
		return a.Run(ctx)
	},
}

// runConfig assembles the interview settings from viper, which layers
// flags over INTERVU_* env vars over config-file keys.
func runConfig() app.Config {
	return app.Config{
		Mode:       interview.Mode(viper.GetString("mode")),
		Domain:     viper.GetString("domain"),
		Count:      viper.GetInt("count"),
		BankPath:   viper.GetString("bank"),
		HRBankPath: viper.GetString("hr-bank"),
		ResumePath: viper.GetString("resume"),
		Seed:       viper.GetInt64("seed"),
		Structured: viper.GetBool("structured"),
	}
}

func init() {
	f := runCmd.Flags()
	f.StringP("mode", "m", "hr", "Interview mode: domain, hr, resume, complete")
	f.StringP("domain", "d", "", "Category label when sampling from a domain bank")
	f.IntP("count", "n", 0, "Questions in a single-round mode (default: 10 domain, 5 hr)")
	f.String("bank", "", "Path to a Domain,Questions CSV bank")
	f.String("hr-bank", "", "Path to a single-column Question CSV bank")
	f.StringP("resume", "r", "", "Path to a resume file (.txt, .md)")
	f.Int64("seed", 0, "Sampling seed (0 = time-based)")
	f.Bool("structured", false, "Request schema-validated JSON scoring responses")
}
