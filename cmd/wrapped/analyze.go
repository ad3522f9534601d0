package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rusuraluca/apple-health-wrapped/internal/aggregate"
	"github.com/rusuraluca/apple-health-wrapped/internal/domain"
	"github.com/rusuraluca/apple-health-wrapped/internal/export"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <export.zip|export.xml>",
	Short: "Summarize one Apple Health export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := domain.NewService(export.NewOpener(), domain.WithLogger(log.New(io.Discard, "", 0)))
		result, err := service.Summarize(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if analyzeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result.Summary)
		}
		printSummary(cmd.OutOrStdout(), result.Summary)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the summary as indented JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func printSummary(w io.Writer, s *aggregate.Summary) {
	fmt.Fprintf(w, "Steps         %d total, %d/day", s.Steps.Total, s.Steps.Average)
	if s.Steps.BestMonth != "" {
		fmt.Fprintf(w, " (best month %s)", s.Steps.BestMonth)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Workouts      %d sessions, %d min", s.Workouts.Total, s.Workouts.TotalMinutes)
	if len(s.Workouts.Types) > 0 {
		names := make([]string, 0, len(s.Workouts.Types))
		for name := range s.Workouts.Types {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(w, " (")
		for i, name := range names {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			fmt.Fprintf(w, "%s x%d", name, s.Workouts.Types[name])
		}
		fmt.Fprintf(w, ")")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sleep         %g h total, %g h/night", s.Sleep.TotalHours, s.Sleep.AverageHours)
	if s.Sleep.BestMonth != "" {
		fmt.Fprintf(w, " (best month %s)", s.Sleep.BestMonth)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Heart rate    %d bpm average, %d bpm resting\n", s.HeartRate.Average, s.HeartRate.Resting)
	fmt.Fprintf(w, "Active energy %g kcal total, %d kcal/day\n", s.ActiveEnergy.Total, s.ActiveEnergy.Average)
	fmt.Fprintf(w, "Mindfulness   %g min across %d sessions\n", s.Mindful.Total, s.Mindful.Sessions)

	fmt.Fprintln(w)
	for _, line := range []string{s.Insights.TopAchievement, s.Insights.FunFact, s.Insights.YearComparison} {
		if line != "" {
			fmt.Fprintln(w, line)
		}
	}
}
