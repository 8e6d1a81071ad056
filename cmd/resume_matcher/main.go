// Package main provides the entry point for the Resume Matcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume Matcher analysis engine",
	Long:  "Resume Matcher scores resumes against job descriptions using skill-taxonomy matching and hybrid lexical plus semantic text similarity, and produces an actionable improvement plan.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
