package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dewaterRecommender/business/recommender"
	"dewaterRecommender/internal/catalog"
	"dewaterRecommender/internal/classifier"
	"dewaterRecommender/internal/cli"
	"dewaterRecommender/pkg/config"
	"dewaterRecommender/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		modelDir    string
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "dewater-cli",
		Short: "Interactive supplier recommendation console",
		Long: `Menu-driven supplier recommendations for dewatering equipment.

Walks through product, urgency, quantity and budget selection, then ranks
every supplier offering the product using the same engine as the HTTP API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(modelDir, catalogPath)
		},
	}

	cmd.Flags().StringVar(&modelDir, "model-dir", "", "Directory with the exported model artifacts (default from MODEL_DIR)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Supplier dataset CSV path (default from CATALOG_CSV_PATH)")

	return cmd
}

func run(modelDir, catalogPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if modelDir != "" {
		cfg.Model.Dir = modelDir
	}
	if catalogPath != "" {
		cfg.Catalog.CSVPath = catalogPath
	}

	logger.Init(cfg.App.Environment)

	model, err := classifier.Load(cfg.Model.Dir)
	if err != nil {
		return fmt.Errorf("load classifier artifacts: %w", err)
	}

	offers, err := catalog.LoadCSV(cfg.Catalog.CSVPath)
	if err != nil {
		return fmt.Errorf("load supplier catalog: %w", err)
	}

	svc, err := recommender.NewRecommenderService(catalog.NewStore(offers), model)
	if err != nil {
		return fmt.Errorf("init recommender: %w", err)
	}

	app := cli.New(svc, os.Stdin, os.Stdout)

	return app.Run(context.Background())
}
