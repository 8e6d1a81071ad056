package main

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchConcurrency int

var batchCmd = &cobra.Command{
	Use:   "batch <jd> <resume>...",
	Short: "Score many resumes against one job description",
	Long:  `Analyze several resume files against a single job description concurrently and print the results, ranked by score, as a JSON array.`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes analyzed in parallel")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	eng, cleanup, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	jd, err := readDocument(args[0])
	if err != nil {
		return err
	}

	resumePaths := args[1:]
	results := make([]*types.AnalysisResult, len(resumePaths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, path := range resumePaths {
		g.Go(func() error {
			resume, err := readDocument(path)
			if err != nil {
				return err
			}
			result, err := eng.Match(gctx, resume, jd)
			if err != nil {
				return err
			}
			results[i] = result
			logger.Info("resume analyzed",
				zap.String("resume", path),
				zap.Int("score", result.Score))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
