package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume> <jd>",
	Short: "Score one resume against one job description",
	Long:  `Analyze a resume file against a job description file and print the full analysis result as JSON. Supported formats: .pdf, .docx, .txt (and extensionless plain text).`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
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

	resume, err := readDocument(args[0])
	if err != nil {
		return err
	}
	jd, err := readDocument(args[1])
	if err != nil {
		return err
	}

	result, err := eng.Match(ctx, resume, jd)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// readDocument loads a file from disk into a Document
func readDocument(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return types.Document{Filename: filepath.Base(path), Data: data}, nil
}
