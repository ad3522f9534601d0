package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "wrapped builds a year-in-review summary from an Apple Health export",
	Long:  "wrapped reads an Apple Health export archive and reports aggregated steps, workouts, sleep, heart rate, active energy, and mindful minutes.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
