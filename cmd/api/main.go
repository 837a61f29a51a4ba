package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyloop/core/cmd/api/commands"
)

// @title StudyLoop API
// @version 1.0
// @description Spaced-repetition study tracker on the Ebbinghaus forgetting curve

// @host localhost:8080
// @BasePath /api/v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "studyloop",
		Short: "StudyLoop server",
		Long:  `StudyLoop tracks daily study items and schedules spaced-repetition reviews on a fixed Ebbinghaus interval set.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
