package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/plantrx/guide-engine/internal/guide"
	"github.com/plantrx/guide-engine/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate guides for every plan type at once",
	Long:  `Generates all five plan guides for one profile concurrently and writes each PDF to the output directory.`,
	RunE:  runBatchCmd,
}

var (
	batchProfilePath string
	batchAnswersPath string
	batchOutputDir   string
)

func init() {
	batchCmd.Flags().StringVar(&batchProfilePath, "profile", "", "Path to user profile JSON file")
	batchCmd.Flags().StringVar(&batchAnswersPath, "answers", "", "Path to questionnaire answers JSON file")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", ".", "Output directory for the PDFs")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profile, err := loadProfile(batchProfilePath)
	if err != nil {
		return err
	}
	answers, err := loadAnswers(batchAnswersPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Each generation is independent, so the plans run in parallel. Each
	// goroutine gets its own Generator; a Canvas is single-writer.
	g, ctx := errgroup.WithContext(ctx)
	for _, plan := range types.AllPlanTypes {
		g.Go(func() error {
			gen := &guide.Generator{}
			res, err := gen.Generate(ctx, guide.Request{
				Plan:    plan,
				Profile: profile,
				Answers: answers,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", plan, err)
			}

			outPath := filepath.Join(batchOutputDir, outputFilename(plan, profile))
			if err := os.WriteFile(outPath, res.PDF, 0o644); err != nil {
				return fmt.Errorf("%s: failed to write guide: %w", plan, err)
			}
			fmt.Printf("Wrote %s (%d pages)\n", outPath, res.Pages)
			return nil
		})
	}

	return g.Wait()
}
