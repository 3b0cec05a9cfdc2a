// Package main provides the entry point for the matching engine HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradmatch",
	Short: "Candidate-job matching engine",
	Long:  "gradmatch scores graduating-student profiles against job eligibility rules and serves ranked matches, recommendations and matching statistics over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
