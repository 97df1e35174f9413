package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"larpscan/packages/ai"
	"larpscan/packages/analyzer"
	"larpscan/packages/config"
	"larpscan/packages/hosting"
	"larpscan/packages/report"
)

var (
	configPath   string
	maxFiles     int
	segmentChars int
	timeout      time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "larpscan",
	Short:         "Due-diligence analysis of GitHub repositories",
	Long:          `larpscan crawls a GitHub repository, samples its code, and asks a generation model whether the project is legitimate or just larping.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <repository-url>",
	Short: "Analyze one repository and print the verdict",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found")
	}

	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path (default config/development.yaml)")
	analyzeCmd.Flags().IntVar(&maxFiles, "max-files", 0, "override the sampled file cap")
	analyzeCmd.Flags().IntVar(&segmentChars, "segment-chars", 0, "override the display segment budget")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "analysis deadline")
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if maxFiles > 0 {
		cfg.Sampling.MaxFiles = maxFiles
	}
	if segmentChars > 0 {
		cfg.Display.SegmentChars = segmentChars
	}

	creds := config.LoadCredentials()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	host, err := hosting.NewClient(creds.GithubToken, "")
	if err != nil {
		return err
	}

	gen, err := ai.NewClient(ctx, creds.GeminiAPIKey, cfg.AI, slog.Default())
	if err != nil {
		return err
	}
	defer gen.Close()

	a := analyzer.New(host, gen, cfg, slog.Default())
	rep, err := a.Analyze(ctx, args[0])
	if err != nil {
		return err
	}

	return report.Render(os.Stdout, rep)
}
