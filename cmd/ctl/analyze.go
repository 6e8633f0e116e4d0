package main

import (
	"fmt"
	"log/slog"
	"os"
	"venturemind/db"
	"venturemind/internal/config"
	"venturemind/internal/repository"
	"venturemind/internal/service"
	"venturemind/pkg/llm"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		ownerID   string
		datasetID string
		file      string
		problem   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a dataset file and store insights and draft posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			conn, err := db.Connect(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer conn.Close()

			ai, err := llm.NewCompleter(cmd.Context(), cfg.AIProvider, cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
			if err != nil {
				return err
			}

			analyzer := service.NewAnalyzer(repository.NewContentRepository(conn), ai, cfg.AITimeout, slog.Default())

			insight, err := analyzer.Analyze(cmd.Context(), ownerID, datasetID, string(text), problem)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "insight %s\n\n%s\n", insight.ID, insight.InsightsText)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "owner id the results belong to")
	cmd.Flags().StringVar(&datasetID, "dataset-id", "", "dataset the analysis refers to")
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the dataset file")
	cmd.Flags().StringVarP(&problem, "problem", "p", "", "business problem statement")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("problem")
	return cmd
}
